package glossary

import (
	"fmt"
	"strconv"

	"github.com/standardnine/s9glossary/pkg/glossary/models"
	"github.com/standardnine/s9glossary/pkg/glossary/output"
	"github.com/standardnine/s9glossary/pkg/glossary/parser"
)

// Output is a rendered glossary document and where it goes.
type Output struct {
	// Path is the file the document is written to.
	Path string
	// Sheets lists the sheets the document was built from.
	Sheets []string
	// Document holds the assembled entries.
	Document models.Document
	// Content is the rendered S9ML text.
	Content string
	// Skipped lists rows that produced no entry.
	Skipped []Skipped
}

// Result reports the outcome of writing one Output.
type Result struct {
	Path    string
	Sheets  []string
	Entries int
	Skipped []Skipped
	// Err is a *WriteError when the write failed.
	Err error
}

// Load reads the workbook at path. Any failure is returned as a *LoadError.
func Load(path string) (*models.Workbook, error) {
	wb, err := parser.LoadWorkbook(path)
	if err != nil {
		return nil, NewLoadError(path, err)
	}
	return wb, nil
}

// Convert loads the workbook at path, renders its sheets according to
// opts.Mode and writes the results. A load failure aborts the run and is
// returned; write failures are logged and reported per Result only.
func Convert(path string, opts Options) ([]Result, error) {
	opts = opts.withDefaults()

	wb, err := Load(path)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("workbook loaded", "book", wb.BookName, "sheets", len(wb.SheetNames))

	outputs, err := Build(wb, opts)
	if err != nil {
		return nil, err
	}

	return Write(outputs, opts), nil
}

// Build renders the workbook's sheets into documents without writing them.
func Build(wb *models.Workbook, opts Options) ([]Output, error) {
	opts = opts.withDefaults()

	switch opts.Mode {
	case ModeLastSheet, ModePerSheet:
		return buildPerSheet(wb, opts)
	case ModeMerged:
		out, err := buildMerged(wb, opts)
		if err != nil {
			return nil, err
		}
		return []Output{out}, nil
	default:
		return nil, fmt.Errorf("invalid mode: %s", opts.Mode)
	}
}

func buildPerSheet(wb *models.Workbook, opts Options) ([]Output, error) {
	usedPaths := make(map[string]bool)
	outputs := make([]Output, 0, len(wb.SheetNames))

	for _, name := range wb.SheetNames {
		fragments, skipped, err := TransformSheet(name, wb.Sheets[name], opts)
		if err != nil {
			return nil, err
		}

		path := opts.OutputPath
		if opts.Mode == ModePerSheet {
			path = output.SheetPath(opts.OutputPath, name)
			for n := 2; usedPaths[path]; n++ {
				path = output.SheetPath(opts.OutputPath, name+" "+strconv.Itoa(n))
			}
			usedPaths[path] = true
		}

		out, err := assemble(path, []string{name}, fragments, skipped, opts)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}

	return outputs, nil
}

func buildMerged(wb *models.Workbook, opts Options) (Output, error) {
	var (
		fragments []string
		skipped   []Skipped
	)
	for _, name := range wb.SheetNames {
		f, s, err := TransformSheet(name, wb.Sheets[name], opts)
		if err != nil {
			return Output{}, err
		}
		fragments = append(fragments, f...)
		skipped = append(skipped, s...)
	}

	return assemble(opts.OutputPath, wb.SheetNames, fragments, skipped, opts)
}

func assemble(path string, sheets []string, fragments []string, skipped []Skipped, opts Options) (Output, error) {
	id, err := opts.NewID()
	if err != nil {
		return Output{}, fmt.Errorf("generate document id: %w", err)
	}

	doc := models.Document{
		ID:      id,
		Entries: fragments,
	}

	return Output{
		Path:     path,
		Sheets:   sheets,
		Document: doc,
		Content:  output.Render(doc),
		Skipped:  skipped,
	}, nil
}

// Write writes the outputs in order, each write completing before the next
// starts. Failures are logged and recorded in the matching Result.
func Write(outputs []Output, opts Options) []Result {
	opts = opts.withDefaults()

	results := make([]Result, 0, len(outputs))
	for _, out := range outputs {
		result := Result{
			Path:    out.Path,
			Sheets:  out.Sheets,
			Entries: len(out.Document.Entries),
			Skipped: out.Skipped,
		}

		if err := output.WriteFile(out.Path, out.Content); err != nil {
			result.Err = NewWriteError(out.Path, out.Sheets, err)
			opts.Logger.Error("glossary write failed", "sheets", out.Sheets, "path", out.Path, "error", err)
		} else {
			opts.Logger.Info("glossary written", "sheets", out.Sheets, "path", out.Path, "entries", result.Entries)
		}

		results = append(results, result)
	}

	return results
}
