package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractSheet(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Set some test data
	f.SetCellValue(sheetName, "A1", "Gateway")
	f.SetCellValue(sheetName, "B1", "A network boundary device")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", "007")
	f.SetCellValue(sheetName, "A4", "Text")

	// Save to temp file
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// Open and extract
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	sheet, err := ExtractSheet(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractSheet failed: %v", err)
	}

	// 5 cells plus the range metadata
	if len(sheet) != 6 {
		t.Errorf("Expected 6 keys, got %d: %v", len(sheet), sheet)
	}

	if sheet["A1"].String() != "Gateway" {
		t.Errorf("Expected 'Gateway', got %q", sheet["A1"].String())
	}
	if sheet["A2"].Value != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", sheet["A2"].Value, sheet["A2"].Value)
	}
	if sheet["B2"].String() != "007" {
		t.Errorf("Expected text '007' to be kept, got %q", sheet["B2"].String())
	}
	if _, ok := sheet["A3"]; ok {
		t.Error("Empty cell A3 should not be extracted")
	}
	if ref := sheet.Ref(); ref != "A1:B4" {
		t.Errorf("Expected ref A1:B4, got %q", ref)
	}
}

func TestExtractSheetEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet, err := ExtractSheet(f, "Sheet1")
	if err != nil {
		t.Fatalf("ExtractSheet failed: %v", err)
	}
	if len(sheet) != 0 {
		t.Errorf("Expected empty sheet, got %v", sheet)
	}
	if sheet.Ref() != "" {
		t.Errorf("Expected no ref, got %q", sheet.Ref())
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestUsedRange(t *testing.T) {
	tests := []struct {
		rows     [][]string
		expected string
	}{
		{nil, ""},
		{[][]string{{"", ""}}, ""},
		{[][]string{{"a", "b"}}, "A1:B1"},
		{[][]string{{}, {"", "x"}, {"y"}}, "A2:B3"},
		{[][]string{{"", "", "z"}}, "C1:C1"},
	}

	for _, tt := range tests {
		if result := usedRange(tt.rows); result != tt.expected {
			t.Errorf("usedRange(%v) = %q, expected %q", tt.rows, result, tt.expected)
		}
	}
}
