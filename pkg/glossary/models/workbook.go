package models

// Workbook represents a loaded workbook with sheets in source order.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists sheet names in the order they appear in the file.
	SheetNames []string `json:"sheet_names"`
	// Sheets maps sheet name to its cells.
	Sheets map[string]Sheet `json:"sheets"`
}
