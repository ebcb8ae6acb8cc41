package parser

import (
	"fmt"
	"sort"

	"github.com/standardnine/s9glossary/pkg/glossary/models"
	"github.com/xuri/excelize/v2"
)

const (
	termColumn        = 1 // A
	descriptionColumn = 2 // B
)

// GroupRows decodes every cell address of the sheet into (column, row) and
// returns the glossary rows in ascending row order. Metadata keys and cells
// outside columns A and B are ignored. Rows without a cell in either column
// are omitted.
func GroupRows(sheet models.Sheet) ([]models.Row, error) {
	byRow := make(map[int]*models.Row)

	for addr, cell := range sheet {
		if models.IsMetaKey(addr) {
			continue
		}

		col, rowNum, err := excelize.CellNameToCoordinates(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid cell address %q: %w", addr, err)
		}
		if col != termColumn && col != descriptionColumn {
			continue
		}

		row, ok := byRow[rowNum]
		if !ok {
			row = &models.Row{R: rowNum}
			byRow[rowNum] = row
		}

		c := cell
		if col == termColumn {
			row.Term = &c
		} else {
			row.Description = &c
		}
	}

	rows := make([]models.Row, 0, len(byRow))
	for _, row := range byRow {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].R < rows[j].R
	})

	return rows, nil
}
