package parser

import (
	"strconv"

	"github.com/standardnine/s9glossary/pkg/glossary/models"
	"github.com/xuri/excelize/v2"
)

// ExtractSheet extracts the non-empty cells of a sheet keyed by address.
// The used range is stored under models.RefKey when the sheet has data.
func ExtractSheet(f *excelize.File, sheetName string) (models.Sheet, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	sheet := make(models.Sheet)
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			sheet[cellName] = models.Cell{
				Value: parseValue(cellValue),
				Text:  cellValue,
			}
		}
	}

	if ref := usedRange(rows); ref != "" {
		sheet[models.RefKey] = models.Cell{Value: ref, Text: ref}
	}

	return sheet, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
