package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/courseforge-api/internal/formatter"
	"github.com/xuri/excelize/v2"
)

// Common errors returned by the export package
var (
	// ErrEmptyContent is returned when there are no rows to export.
	ErrEmptyContent = errors.New("no content to export")
)

// SheetName is the single worksheet every exported workbook contains.
const SheetName = "Course Content"

// ExcelMIMEType is the Content-Type for the exported workbook.
const ExcelMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maxColumnWidth caps auto-sized column widths.
const maxColumnWidth = 50

// headerTitles maps internal column names to the header labels shown in the
// sheet. Unknown columns fall back to their raw name.
var headerTitles = map[string]string{
	formatter.ColQuestion:      "Question",
	formatter.ColOptionA:       "Option A",
	formatter.ColOptionB:       "Option B",
	formatter.ColOptionC:       "Option C",
	formatter.ColOptionD:       "Option D",
	formatter.ColCorrectOption: "Correct Answer",
	formatter.ColSection:       "Section",
	formatter.ColPoint:         "Point",
	formatter.ColItem:          "Item",
	formatter.ColMatch:         "Match",
	formatter.ColAnswer:        "Sample Answer",
	formatter.ColScript:        "Script",
	formatter.ColNotes:         "Notes",
}

// WriteExcel renders the formatted content as a styled single-sheet workbook
// and returns it as a byte buffer ready for download. Layout: a merged title
// row, one header row built from the content's columns, then one data row per
// formatted row in original order. Returns ErrEmptyContent when there are no
// rows.
func WriteExcel(content *formatter.FormattedContent, topicTitle string) (*bytes.Buffer, error) {
	if content == nil || len(content.Rows) == 0 {
		return nil, ErrEmptyContent
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeTitle(f, content, topicTitle); err != nil {
		return nil, err
	}

	if err := writeHeader(f, content); err != nil {
		return nil, err
	}

	if err := writeRows(f, content); err != nil {
		return nil, err
	}

	if err := sizeColumns(f, content); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf, nil
}

// Sheet layout rows. Row 1 is the merged title, row 2 is blank, row 3 is the
// header, data starts at row 4.
const (
	titleRowIndex  = 1
	headerRowIndex = 3
	dataRowOffset  = 4
)

func writeTitle(f *excelize.File, content *formatter.FormattedContent, topicTitle string) error {
	title := fmt.Sprintf("%s - %s", topicTitle, strings.ToUpper(string(content.ContentType)))

	start, err := excelize.CoordinatesToCellName(1, titleRowIndex)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(content.Columns), titleRowIndex)
	if err != nil {
		return err
	}

	if err := f.MergeCell(SheetName, start, end); err != nil {
		return fmt.Errorf("failed to merge title cells: %w", err)
	}
	if err := f.SetCellValue(SheetName, start, title); err != nil {
		return err
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 16, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	return f.SetCellStyle(SheetName, start, end, styleID)
}

func writeHeader(f *excelize.File, content *formatter.FormattedContent) error {
	for i, col := range content.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRowIndex)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, HeaderTitle(col)); err != nil {
			return err
		}
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: "Arial", Size: 12, Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E2F3"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	start, err := excelize.CoordinatesToCellName(1, headerRowIndex)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(content.Columns), headerRowIndex)
	if err != nil {
		return err
	}

	return f.SetCellStyle(SheetName, start, end, styleID)
}

func writeRows(f *excelize.File, content *formatter.FormattedContent) error {
	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 10},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return err
	}

	for rowIdx, row := range content.Rows {
		for colIdx, col := range content.Columns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, dataRowOffset+rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, row[col]); err != nil {
				return err
			}
			if err := f.SetCellStyle(SheetName, cell, cell, styleID); err != nil {
				return err
			}
		}
	}

	return nil
}

// sizeColumns widens each column to fit its longest value, capped at
// maxColumnWidth characters.
func sizeColumns(f *excelize.File, content *formatter.FormattedContent) error {
	for i, col := range content.Columns {
		maxLen := len(HeaderTitle(col))
		for _, row := range content.Rows {
			for _, line := range strings.Split(row[col], "\n") {
				if len(line) > maxLen {
					maxLen = len(line)
				}
			}
		}

		width := float64(maxLen + 2)
		if width > maxColumnWidth {
			width = maxColumnWidth
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, width); err != nil {
			return err
		}
	}

	return nil
}

// HeaderTitle returns the display label for an internal column name.
func HeaderTitle(col string) string {
	if title, ok := headerTitles[col]; ok {
		return title
	}
	return col
}
