package export

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/phrazzld/courseforge-api/internal/formatter"
)

// JSONMIMEType is the Content-Type for the exported JSON document.
const JSONMIMEType = "application/json"

// applicationName identifies this service in export metadata.
const applicationName = "English Communication Course Builder"

// jsonEnvelope is the exported document: metadata plus the formatted rows.
type jsonEnvelope struct {
	Metadata jsonMetadata                `json:"metadata"`
	Content  *formatter.FormattedContent `json:"content"`
}

type jsonMetadata struct {
	Title       string `json:"title"`
	ContentType string `json:"content_type"`
	GeneratedAt string `json:"generated_at"`
	Application string `json:"application"`
}

// WriteJSON renders the formatted content as an indented JSON document
// wrapped in a metadata envelope. Returns ErrEmptyContent when there are no
// rows. The now argument pins the generated_at timestamp so output stays
// reproducible in tests.
func WriteJSON(content *formatter.FormattedContent, topicTitle string, now time.Time) ([]byte, error) {
	if content == nil || len(content.Rows) == 0 {
		return nil, ErrEmptyContent
	}

	envelope := jsonEnvelope{
		Metadata: jsonMetadata{
			Title:       topicTitle,
			ContentType: string(content.ContentType),
			GeneratedAt: now.UTC().Format(time.RFC3339),
			Application: applicationName,
		},
		Content: content,
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export envelope: %w", err)
	}

	return data, nil
}

// filenameSanitizer collapses anything that is not a word character or hyphen.
var filenameSanitizer = regexp.MustCompile(`[^\w\-]+`)

// Filename derives a download filename from the topic title and content
// type, e.g. "Business_Communication_mcq.xlsx".
func Filename(topicTitle string, contentType, ext string) string {
	base := filenameSanitizer.ReplaceAllString(strings.TrimSpace(topicTitle), "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "course_content"
	}
	return fmt.Sprintf("%s_%s.%s", base, contentType, ext)
}
