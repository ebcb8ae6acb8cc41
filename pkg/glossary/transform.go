package glossary

import (
	"fmt"

	"github.com/standardnine/s9glossary/pkg/glossary/models"
	"github.com/standardnine/s9glossary/pkg/glossary/output"
	"github.com/standardnine/s9glossary/pkg/glossary/parser"
)

// Reasons reported for rows that produce no entry.
const (
	ReasonMissingTerm        = "description without term"
	ReasonMissingDescription = "term without description"
)

// Skipped describes a row that did not produce a glossary entry.
type Skipped struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// TransformSheet converts one sheet into serialized entry fragments, one per
// row holding both a term (column A) and a description (column B). Rows are
// paired by row number and emitted in ascending row order. Rows with only one
// of the two cells are returned as skipped.
func TransformSheet(name string, sheet models.Sheet, opts Options) ([]string, []Skipped, error) {
	opts = opts.withDefaults()
	logger := opts.Logger.With("sheet", name)

	if bounds := parser.ParseRef(sheet.Ref()); bounds != nil {
		logger.Debug("sheet range", "ref", sheet.Ref(), "rows", bounds.R2-bounds.R1+1)
		if bounds.C2 > 2 {
			logger.Warn("columns beyond B are ignored", "ref", sheet.Ref())
		}
	}

	rows, err := parser.GroupRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("sheet %q: %w", name, err)
	}

	var (
		fragments []string
		skipped   []Skipped
	)
	for _, row := range rows {
		if !row.Paired() {
			reason := ReasonMissingDescription
			if row.Term == nil {
				reason = ReasonMissingTerm
			}
			logger.Warn("row skipped", "row", row.R, "reason", reason)
			skipped = append(skipped, Skipped{Row: row.R, Reason: reason})
			continue
		}

		id, err := opts.NewID()
		if err != nil {
			return nil, nil, fmt.Errorf("generate entry id: %w", err)
		}

		if _, ok := row.Term.Value.(string); !ok {
			logger.Debug("numeric term", "row", row.R, "value", row.Term.Value)
		}

		term := row.Term.String()
		entry := models.Entry{
			ID:          id,
			Term:        term,
			Slug:        output.Slug(term),
			Description: row.Description.String(),
		}
		fragments = append(fragments, output.RenderEntry(entry, opts.ShouldEscape()))
	}

	return fragments, skipped, nil
}
