// Package parser reads workbook files into glossary models.
package parser

import (
	"path/filepath"

	"github.com/standardnine/s9glossary/pkg/glossary/models"
	"github.com/xuri/excelize/v2"
)

// LoadWorkbook opens the workbook at path and extracts every sheet.
// Errors from opening the file are returned unwrapped so callers can
// inspect them with errors.Is.
func LoadWorkbook(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	wb := &models.Workbook{
		BookName:   filepath.Base(path),
		SheetNames: sheetList,
		Sheets:     make(map[string]models.Sheet, len(sheetList)),
	}

	for _, sheetName := range sheetList {
		sheet, err := ExtractSheet(f, sheetName)
		if err != nil {
			return nil, err
		}
		wb.Sheets[sheetName] = sheet
	}

	return wb, nil
}
