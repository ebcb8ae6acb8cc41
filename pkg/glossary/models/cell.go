// Package models defines data structures for workbook-to-glossary conversion.
package models

import "fmt"

// Cell represents a single non-empty worksheet cell.
type Cell struct {
	// Value is the typed cell value: string, int64 or float64.
	Value interface{} `json:"v"`
	// Text is the cell content as displayed in the workbook.
	Text string `json:"w,omitempty"`
}

// String returns the text used when the cell is emitted.
// Text wins over Value so that values like "007" survive unchanged.
func (c Cell) String() string {
	if c.Text != "" {
		return c.Text
	}
	if c.Value == nil {
		return ""
	}
	return fmt.Sprint(c.Value)
}
