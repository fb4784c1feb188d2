package domain

import (
	"errors"
	"regexp"
)

// Common validation errors for Topic
var (
	ErrTopicIDEmpty          = errors.New("topic ID cannot be empty")
	ErrTopicIDInvalid        = errors.New("topic ID must be a lowercase snake_case slug")
	ErrTopicTitleEmpty       = errors.New("topic title cannot be empty")
	ErrTopicTemplateEmpty    = errors.New("topic prompt template cannot be empty")
	ErrTopicTemperatureRange = errors.New("topic temperature must be between 0 and 1")
)

// topicIDPattern constrains topic IDs to stable snake_case slugs so they can
// be used directly in URLs and log fields.
var topicIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Topic represents a named educational subject with an associated prompt
// template and default generation parameters. Topics are immutable: they are
// loaded once at process start and only read thereafter.
type Topic struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Icon           string  `json:"icon"`
	Temperature    float64 `json:"temperature"`
	EstimatedTime  string  `json:"estimated_time"`
	PromptTemplate string  `json:"-"`
}

// Validate checks if the Topic has valid data.
// Returns an error if any field fails validation.
func (t Topic) Validate() error {
	if t.ID == "" {
		return ErrTopicIDEmpty
	}

	if !topicIDPattern.MatchString(t.ID) {
		return ErrTopicIDInvalid
	}

	if t.Title == "" {
		return ErrTopicTitleEmpty
	}

	if t.PromptTemplate == "" {
		return ErrTopicTemplateEmpty
	}

	if t.Temperature < 0 || t.Temperature > 1 {
		return ErrTopicTemperatureRange
	}

	return nil
}
