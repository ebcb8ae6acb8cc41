package parser

import (
	"strings"

	"github.com/standardnine/s9glossary/pkg/glossary/models"
	"github.com/xuri/excelize/v2"
)

// ParseRef parses a range reference to Bounds.
// Accepted forms: A1:D10, $A$1:$D$10, 'Sheet'!A1:D10 and a single cell A1.
// Returns nil if the reference cannot be parsed.
func ParseRef(ref string) *models.Bounds {
	ref = strings.TrimSpace(ref)

	// Drop the sheet qualifier
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}

	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")
	if ref == "" {
		return nil
	}

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.Bounds{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
