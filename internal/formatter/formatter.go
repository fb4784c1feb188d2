package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/courseforge-api/internal/domain"
	"github.com/phrazzld/courseforge-api/internal/generation"
)

// ErrMalformedContent is returned when raw text cannot be parsed into the
// shape expected by the requested content type.
var ErrMalformedContent = errors.New("generated content is malformed")

// Row is one structured record extracted from generated text, keyed by
// column name.
type Row map[string]string

// FormattedContent is the tabular result of formatting one generation
// result. Every row has exactly the columns in Columns, in that order; this
// invariant is what makes the rows exportable as a well-formed spreadsheet.
type FormattedContent struct {
	ContentType domain.ContentType `json:"content_type"`
	Columns     []string           `json:"columns"`
	Rows        []Row              `json:"rows"`
}

// Column names shared across content types.
const (
	ColQuestion      = "question"
	ColOptionA       = "optionA"
	ColOptionB       = "optionB"
	ColOptionC       = "optionC"
	ColOptionD       = "optionD"
	ColCorrectOption = "correctOption"
	ColSection       = "section"
	ColPoint         = "point"
	ColItem          = "item"
	ColMatch         = "match"
	ColAnswer        = "answer"
	ColScript        = "script"
	ColNotes         = "notes"
)

// columnsByType fixes the column set and order for each content type.
var columnsByType = map[domain.ContentType][]string{
	domain.ContentTypeMCQ: {
		ColQuestion, ColOptionA, ColOptionB, ColOptionC, ColOptionD, ColCorrectOption, ColNotes,
	},
	domain.ContentTypeCheatSheet: {ColSection, ColPoint, ColNotes},
	domain.ContentTypeDragDrop:   {ColItem, ColMatch, ColNotes},
	domain.ContentTypeTextualQA:  {ColQuestion, ColAnswer, ColNotes},
	domain.ContentTypeListening:  {ColScript, ColQuestion, ColNotes},
}

// Columns returns the fixed, ordered column set for the given content type.
func Columns(ct domain.ContentType) []string {
	cols := columnsByType[ct]
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}

// Format parses the raw text of a generation result into row records using
// the content type's marker grammar. It returns ErrMalformedContent if the
// text yields no valid rows; it never returns zero rows as success.
func Format(result *generation.Result) (*FormattedContent, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: no generation result", ErrMalformedContent)
	}

	if !result.ContentType.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidContentType, result.ContentType)
	}

	lines := splitLines(result.RawText)

	var (
		rows []Row
		err  error
	)
	switch result.ContentType {
	case domain.ContentTypeMCQ:
		rows, err = parseMCQ(lines)
	case domain.ContentTypeCheatSheet:
		rows, err = parseCheatSheet(lines)
	case domain.ContentTypeDragDrop:
		rows, err = parseDragDrop(lines)
	case domain.ContentTypeTextualQA:
		rows, err = parseTextualQA(lines)
	case domain.ContentTypeListening:
		rows, err = parseListening(lines)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows extracted from %d lines", ErrMalformedContent, len(lines))
	}

	cols := Columns(result.ContentType)
	for _, row := range rows {
		normalizeRow(row, cols)
	}

	return &FormattedContent{
		ContentType: result.ContentType,
		Columns:     cols,
		Rows:        rows,
	}, nil
}

// splitLines breaks raw text into trimmed, non-empty lines.
func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// normalizeRow guarantees the row has exactly the given columns: missing
// keys get empty values and stray keys are removed.
func normalizeRow(row Row, cols []string) {
	keep := make(map[string]bool, len(cols))
	for _, col := range cols {
		keep[col] = true
		if _, ok := row[col]; !ok {
			row[col] = ""
		}
	}
	for key := range row {
		if !keep[key] {
			delete(row, key)
		}
	}
}

// appendNote adds an unmatched line to the row's notes field.
func appendNote(row Row, line string) {
	if row[ColNotes] == "" {
		row[ColNotes] = line
		return
	}
	row[ColNotes] += "\n" + line
}
