package glossary

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/standardnine/s9glossary/pkg/glossary/output"
	"github.com/xuri/excelize/v2"
)

type row struct {
	term, desc string
}

// writeWorkbook saves a workbook with one sheet per entry of sheets, in order.
func writeWorkbook(t *testing.T, sheetNames []string, sheets map[string][]row) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range sheetNames {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("SetSheetName failed: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet failed: %v", err)
		}
		for r, rw := range sheets[name] {
			if rw.term != "" {
				f.SetCellValue(name, fmt.Sprintf("A%d", r+1), rw.term)
			}
			if rw.desc != "" {
				f.SetCellValue(name, fmt.Sprintf("B%d", r+1), rw.desc)
			}
		}
	}

	path := filepath.Join(t.TempDir(), DefaultInputPath)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func sequentialIDs() output.IDFunc {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("%032x", n), nil
	}
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func boolPtr(b bool) *bool {
	return &b
}
