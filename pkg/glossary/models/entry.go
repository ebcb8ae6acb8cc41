package models

// Entry is a single glossary entry before serialization.
type Entry struct {
	// ID is the entry's 32 hex character identifier.
	ID string `json:"id"`
	// Term is the raw term text.
	Term string `json:"term"`
	// Slug is the URL-safe key derived from Term.
	Slug string `json:"slug"`
	// Description is the raw description text.
	Description string `json:"description"`
}

// Document is a glossary document assembled from one or more sheets.
type Document struct {
	// ID is the document's 32 hex character identifier.
	ID string `json:"id"`
	// Entries holds serialized entry fragments in production order.
	Entries []string `json:"entries"`
}
