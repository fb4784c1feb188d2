package formatter

import (
	"fmt"
	"regexp"
	"strings"
)

// Marker patterns for the per-content-type grammars. These are fixed by
// design: the request builder instructs the model to emit exactly these
// shapes, and this file is the only place that recognizes them.
var (
	// "1. question text" or "12) question text"
	numberedRe = regexp.MustCompile(`^(\d+)[.)]\s+(.+)$`)

	// "A) option text", "b. option text"
	optionRe = regexp.MustCompile(`^([A-Da-d])[.)]\s+(.+)$`)

	// "Answer: B", "Correct Answer - (c)"
	answerRe = regexp.MustCompile(`(?i)^(?:correct\s+)?answer\s*[:\-]\s*\(?([A-Da-d])\)?\b`)

	// "Section Heading:" or "## Section Heading"
	headingColonRe = regexp.MustCompile(`^(.+?):$`)
	headingHashRe  = regexp.MustCompile(`^#+\s+(.+?)\s*$`)

	// "- bullet", "* bullet", "• bullet"
	bulletRe = regexp.MustCompile(`^[-*•]\s+(.+)$`)

	// "Q: question", "Question 3: text", optionally behind numbering
	questionLineRe = regexp.MustCompile(`(?i)^(?:\d+[.)]\s*)?q(?:uestion)?\s*\d*\s*[:.]\s*(.+)$`)

	// "A: answer", "Answer: text" (textual QA grammar, full-text answers)
	answerLineRe = regexp.MustCompile(`(?i)^a(?:nswer)?\s*[:.]\s*(.+)$`)

	// "Script: ..." or "Audio script: ..."
	scriptRe = regexp.MustCompile(`(?i)^(?:audio\s+)?script\s*:\s*(.+)$`)
)

// dragDropSeparators, in match order. Spaced hyphen comes last so hyphenated
// words inside terms do not split pairs.
var dragDropSeparators = []string{"->", "=>", " — ", " - "}

// parseMCQ groups lines into multiple-choice rows: a numbered line starts a
// row, option-letter lines fill the four options, and an answer line sets the
// correct option. A row missing any of the four options or the answer makes
// the whole text malformed.
func parseMCQ(lines []string) ([]Row, error) {
	var (
		rows    []Row
		current Row
		pending []string
	)

	for _, line := range lines {
		if m := numberedRe.FindStringSubmatch(line); m != nil {
			current = Row{ColQuestion: m[2]}
			rows = append(rows, current)
			flushPending(current, &pending)
			continue
		}

		if current == nil {
			pending = append(pending, line)
			continue
		}

		if m := answerRe.FindStringSubmatch(line); m != nil {
			current[ColCorrectOption] = strings.ToUpper(m[1])
			continue
		}

		if m := optionRe.FindStringSubmatch(line); m != nil {
			col := "option" + strings.ToUpper(m[1])
			if current[col] != "" {
				appendNote(current, line)
				continue
			}
			current[col] = m[2]
			continue
		}

		appendNote(current, line)
	}

	for i, row := range rows {
		for _, col := range []string{ColOptionA, ColOptionB, ColOptionC, ColOptionD} {
			if row[col] == "" {
				return nil, fmt.Errorf("%w: question %d has fewer than 4 options", ErrMalformedContent, i+1)
			}
		}
		if row[ColCorrectOption] == "" {
			return nil, fmt.Errorf("%w: question %d has no answer line", ErrMalformedContent, i+1)
		}
	}

	return rows, nil
}

// parseCheatSheet turns heading lines into sections and bullet lines into
// one row per point under the current section.
func parseCheatSheet(lines []string) ([]Row, error) {
	var (
		rows    []Row
		section string
		pending []string
	)

	for _, line := range lines {
		if m := headingHashRe.FindStringSubmatch(line); m != nil {
			section = m[1]
			continue
		}

		if m := bulletRe.FindStringSubmatch(line); m != nil {
			row := Row{ColSection: section, ColPoint: m[1]}
			rows = append(rows, row)
			flushPending(row, &pending)
			continue
		}

		if m := headingColonRe.FindStringSubmatch(line); m != nil {
			section = m[1]
			continue
		}

		if len(rows) == 0 {
			pending = append(pending, line)
			continue
		}

		appendNote(rows[len(rows)-1], line)
	}

	return rows, nil
}

// parseDragDrop extracts "item -> match" pairs from numbered lines.
// A numbered line with no recognized separator makes the text malformed
// rather than producing a half-filled pair.
func parseDragDrop(lines []string) ([]Row, error) {
	var (
		rows    []Row
		pending []string
	)

	for _, line := range lines {
		m := numberedRe.FindStringSubmatch(line)
		if m == nil {
			if len(rows) == 0 {
				pending = append(pending, line)
			} else {
				appendNote(rows[len(rows)-1], line)
			}
			continue
		}

		item, match, ok := splitPair(m[2])
		if !ok {
			return nil, fmt.Errorf("%w: pair %s has no separator", ErrMalformedContent, m[1])
		}

		row := Row{ColItem: item, ColMatch: match}
		rows = append(rows, row)
		flushPending(row, &pending)
	}

	return rows, nil
}

// parseTextualQA pairs "Q:" lines with their following "A:" lines.
// A question without an answer makes the text malformed.
func parseTextualQA(lines []string) ([]Row, error) {
	var (
		rows    []Row
		current Row
		pending []string
	)

	for _, line := range lines {
		if m := questionLineRe.FindStringSubmatch(line); m != nil {
			current = Row{ColQuestion: m[1]}
			rows = append(rows, current)
			flushPending(current, &pending)
			continue
		}

		if current == nil {
			pending = append(pending, line)
			continue
		}

		if m := answerLineRe.FindStringSubmatch(line); m != nil {
			if current[ColAnswer] == "" {
				current[ColAnswer] = m[1]
			} else {
				appendNote(current, line)
			}
			continue
		}

		appendNote(current, line)
	}

	for i, row := range rows {
		if row[ColAnswer] == "" {
			return nil, fmt.Errorf("%w: question %d has no answer", ErrMalformedContent, i+1)
		}
	}

	return rows, nil
}

// parseListening binds numbered comprehension questions to the most recent
// "Script:" line. Questions before any script make the text malformed. Lines
// between a script marker and its first question extend the script text.
func parseListening(lines []string) ([]Row, error) {
	var (
		rows       []Row
		script     string
		scriptOpen bool
		pending    []string
	)

	for _, line := range lines {
		if m := scriptRe.FindStringSubmatch(line); m != nil {
			script = m[1]
			scriptOpen = true
			continue
		}

		if m := numberedRe.FindStringSubmatch(line); m != nil {
			if script == "" {
				return nil, fmt.Errorf("%w: question before any script line", ErrMalformedContent)
			}
			row := Row{ColScript: script, ColQuestion: m[2]}
			rows = append(rows, row)
			flushPending(row, &pending)
			scriptOpen = false
			continue
		}

		// Script text may wrap across lines until the first question.
		if scriptOpen {
			script += " " + line
			continue
		}

		if len(rows) == 0 {
			pending = append(pending, line)
			continue
		}

		appendNote(rows[len(rows)-1], line)
	}

	return rows, nil
}

// splitPair splits "item -> match" on the first recognized separator.
func splitPair(s string) (item, match string, ok bool) {
	for _, sep := range dragDropSeparators {
		if idx := strings.Index(s, sep); idx >= 0 {
			item = strings.TrimSpace(s[:idx])
			match = strings.TrimSpace(s[idx+len(sep):])
			if item != "" && match != "" {
				return item, match, true
			}
			return "", "", false
		}
	}
	return "", "", false
}

// flushPending attaches lines that arrived before the first extracted row to
// that row's notes, preserving the no-silent-loss rule.
func flushPending(row Row, pending *[]string) {
	for _, line := range *pending {
		appendNote(row, line)
	}
	*pending = nil
}
