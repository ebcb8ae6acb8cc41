package models

// Row is one logical worksheet row of the two-column glossary layout.
type Row struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Term is the column A cell, nil when the row has none.
	Term *Cell `json:"term,omitempty"`
	// Description is the column B cell, nil when the row has none.
	Description *Cell `json:"description,omitempty"`
}

// Paired reports whether the row has both a term and a description.
func (r Row) Paired() bool {
	return r.Term != nil && r.Description != nil
}
