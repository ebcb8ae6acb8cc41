package parser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Gateway")
	f.SetCellValue("Sheet1", "B1", "A network boundary device")
	if _, err := f.NewSheet("Networking"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Networking", "A1", "Router")
	f.SetCellValue("Networking", "B1", "Forwards packets")

	path := filepath.Join(t.TempDir(), "glossary-data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := LoadWorkbook(path)
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}

	if wb.BookName != "glossary-data.xlsx" {
		t.Errorf("Expected book name glossary-data.xlsx, got %q", wb.BookName)
	}
	if len(wb.SheetNames) != 2 || wb.SheetNames[0] != "Sheet1" || wb.SheetNames[1] != "Networking" {
		t.Fatalf("Unexpected sheet order: %v", wb.SheetNames)
	}
	if got := wb.Sheets["Networking"]["B1"].String(); got != "Forwards packets" {
		t.Errorf("Expected 'Forwards packets', got %q", got)
	}
}

func TestLoadWorkbookMissing(t *testing.T) {
	_, err := LoadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestLoadWorkbookCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := LoadWorkbook(path)
	if err == nil {
		t.Fatal("Expected error for corrupt workbook")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Corrupt file reported as missing: %v", err)
	}
}
