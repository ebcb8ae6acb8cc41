package models

// RefKey is the metadata key holding a sheet's used range.
const RefKey = "!ref"

// Sheet maps a cell address (e.g. "A3") to its cell.
// Keys starting with '!' carry metadata and are not data cells.
type Sheet map[string]Cell

// IsMetaKey reports whether key is a metadata key rather than a cell address.
func IsMetaKey(key string) bool {
	return len(key) > 0 && key[0] == '!'
}

// Ref returns the sheet's used range, or "" for an empty sheet.
func (s Sheet) Ref() string {
	return s[RefKey].Text
}
