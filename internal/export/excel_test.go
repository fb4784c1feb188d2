package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/phrazzld/courseforge-api/internal/domain"
	"github.com/phrazzld/courseforge-api/internal/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func mcqContent(rowCount int) *formatter.FormattedContent {
	cols := formatter.Columns(domain.ContentTypeMCQ)

	rows := make([]formatter.Row, 0, rowCount)
	for i := 0; i < rowCount; i++ {
		rows = append(rows, formatter.Row{
			formatter.ColQuestion:      "What is the most formal greeting?",
			formatter.ColOptionA:       "Hey there",
			formatter.ColOptionB:       "Dear Mr. Smith",
			formatter.ColOptionC:       "Yo",
			formatter.ColOptionD:       "Hiya",
			formatter.ColCorrectOption: "B",
			formatter.ColNotes:         "",
		})
	}

	return &formatter.FormattedContent{
		ContentType: domain.ContentTypeMCQ,
		Columns:     cols,
		Rows:        rows,
	}
}

// readSheetRows opens the produced workbook and returns its populated rows.
func readSheetRows(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestWriteExcel_HeaderPlusNRows(t *testing.T) {
	t.Parallel()

	const n = 3
	buf, err := WriteExcel(mcqContent(n), "Business Communication")
	require.NoError(t, err)

	rows := readSheetRows(t, buf)

	// Layout: title row, blank spacer, header row, then N data rows.
	require.Len(t, rows, headerRowIndex+n)
	assert.Contains(t, rows[titleRowIndex-1][0], "Business Communication - MCQ")

	header := rows[headerRowIndex-1]
	assert.Equal(t, "Question", header[0])
	assert.Equal(t, "Option A", header[1])
	assert.Equal(t, "Correct Answer", header[5])

	for i := 0; i < n; i++ {
		data := rows[headerRowIndex+i]
		assert.Equal(t, "What is the most formal greeting?", data[0])
		assert.Equal(t, "B", data[5])
	}
}

func TestWriteExcel_SingleRowScenario(t *testing.T) {
	t.Parallel()

	// One formatted MCQ row exports as header + 1 data row.
	buf, err := WriteExcel(mcqContent(1), "Business Communication")
	require.NoError(t, err)

	rows := readSheetRows(t, buf)
	require.Len(t, rows, headerRowIndex+1)
}

func TestWriteExcel_EmptyContent(t *testing.T) {
	t.Parallel()

	empty := &formatter.FormattedContent{
		ContentType: domain.ContentTypeMCQ,
		Columns:     formatter.Columns(domain.ContentTypeMCQ),
	}

	_, err := WriteExcel(empty, "Business Communication")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = WriteExcel(nil, "Business Communication")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestWriteExcel_Deterministic(t *testing.T) {
	t.Parallel()

	// Same input yields identical structural layout on repeated runs.
	first, err := WriteExcel(mcqContent(2), "Email Etiquette")
	require.NoError(t, err)
	second, err := WriteExcel(mcqContent(2), "Email Etiquette")
	require.NoError(t, err)

	assert.Equal(t, readSheetRows(t, first), readSheetRows(t, second))
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	data, err := WriteJSON(mcqContent(1), "Business Communication", now)
	require.NoError(t, err)

	var envelope struct {
		Metadata struct {
			Title       string `json:"title"`
			ContentType string `json:"content_type"`
			GeneratedAt string `json:"generated_at"`
			Application string `json:"application"`
		} `json:"metadata"`
		Content struct {
			Rows []map[string]string `json:"rows"`
		} `json:"content"`
	}
	require.NoError(t, json.Unmarshal(data, &envelope))

	assert.Equal(t, "Business Communication", envelope.Metadata.Title)
	assert.Equal(t, "mcq", envelope.Metadata.ContentType)
	assert.Equal(t, "2025-03-01T12:00:00Z", envelope.Metadata.GeneratedAt)
	assert.Equal(t, "English Communication Course Builder", envelope.Metadata.Application)
	require.Len(t, envelope.Content.Rows, 1)
}

func TestWriteJSON_EmptyContent(t *testing.T) {
	t.Parallel()

	_, err := WriteJSON(nil, "Business Communication", time.Now())
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		ct    string
		ext   string
		want  string
	}{
		{"Business Communication", "mcq", "xlsx", "Business_Communication_mcq.xlsx"},
		{"  Email & Etiquette!  ", "cheat_sheet", "json", "Email_Etiquette_cheat_sheet.json"},
		{"", "mcq", "xlsx", "course_content_mcq.xlsx"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.title, tt.ct, tt.ext))
	}
}
