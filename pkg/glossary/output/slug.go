// Package output renders glossary documents as S9ML and writes them to disk.
package output

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
	parens        = strings.NewReplacer("(", "", ")", "")
)

// Slug derives the URL-safe key of a term: every whitespace run becomes a
// single hyphen, parentheses are removed and the result is lowercased.
func Slug(term string) string {
	s := whitespaceRun.ReplaceAllString(term, "-")
	s = parens.Replace(s)
	return cases.Lower(language.Und).String(s)
}
