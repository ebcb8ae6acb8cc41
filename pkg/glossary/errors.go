package glossary

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// LoadError represents a failure to load the input workbook.
// It matches ErrFileNotFound or ErrInvalidFormat with errors.Is, as well
// as the underlying cause.
type LoadError struct {
	Path string
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewLoadError creates a new LoadError, classifying err by its cause.
func NewLoadError(path string, err error) *LoadError {
	kind := ErrInvalidFormat
	if errors.Is(err, fs.ErrNotExist) {
		kind = ErrFileNotFound
	}
	return &LoadError{
		Path: path,
		Kind: kind,
		Err:  err,
	}
}

// WriteError represents a failure to write a glossary document.
type WriteError struct {
	Sheets []string
	Path   string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s (sheets %q): %v", e.Path, e.Sheets, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError.
func NewWriteError(path string, sheets []string, err error) *WriteError {
	return &WriteError{
		Sheets: sheets,
		Path:   path,
		Err:    err,
	}
}
