package output

import (
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes content to path, replacing any existing content.
func WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// SheetPath derives a per-sheet output path from base by inserting the
// sheet name's slug before the extension: glossary.s9ml -> glossary-terms.s9ml.
func SheetPath(base, sheetName string) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	suffix := Slug(sheetName)
	if suffix == "" {
		return base
	}
	return stem + "-" + suffix + ext
}
