// Package glossary converts term/definition workbooks into S9ML glossaries.
package glossary

import (
	"fmt"
	"log/slog"

	"dario.cat/mergo"
	"github.com/standardnine/s9glossary/pkg/glossary/output"
)

// Mode represents how sheets map onto output files.
type Mode string

const (
	// ModeLastSheet writes every sheet to the same path in order; the last sheet wins.
	ModeLastSheet Mode = "last"
	// ModePerSheet writes each sheet to its own path derived from the sheet name.
	ModePerSheet Mode = "per-sheet"
	// ModeMerged writes all sheets as a single document.
	ModeMerged Mode = "merged"
)

const (
	// DefaultInputPath is the workbook read when no input is given.
	DefaultInputPath = "glossary-data.xlsx"
	// DefaultOutputPath is the glossary written when no output is given.
	DefaultOutputPath = "glossary.s9ml"
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLastSheet, ModePerSheet, ModeMerged:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be %s, %s, or %s)", s, ModeLastSheet, ModePerSheet, ModeMerged)
	}
}

// Options configures conversion behavior.
// Zero fields are filled from DefaultOptions.
type Options struct {
	// Mode specifies how sheets map onto output files.
	Mode Mode
	// OutputPath is the glossary file path, or the base path in per-sheet mode.
	OutputPath string
	// Escape specifies whether &, <, > and " are escaped in emitted text.
	// If nil, defaults to true.
	Escape *bool
	// Logger receives per-sheet progress. If nil, slog.Default() is used.
	Logger *slog.Logger
	// NewID generates element identifiers. If nil, output.NewID is used.
	NewID output.IDFunc
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Mode:       ModeLastSheet,
		OutputPath: DefaultOutputPath,
		Logger:     slog.Default(),
		NewID:      output.NewID,
	}
}

// ShouldEscape returns whether emitted text is XML-escaped.
func (o Options) ShouldEscape() bool {
	if o.Escape != nil {
		return *o.Escape
	}
	return true
}

func (o Options) withDefaults() Options {
	// Merge only fails on mismatched types, which cannot happen here.
	_ = mergo.Merge(&o, DefaultOptions())
	return o
}
