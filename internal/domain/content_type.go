package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ContentType represents the structural category of generated material.
type ContentType string

// Recognized content types.
const (
	ContentTypeMCQ        ContentType = "mcq"
	ContentTypeCheatSheet ContentType = "cheat_sheet"
	ContentTypeDragDrop   ContentType = "drag_drop"
	ContentTypeTextualQA  ContentType = "textual"
	ContentTypeListening  ContentType = "listening"
)

// ErrInvalidContentType is returned when a content type is not one of the
// five recognized values.
var ErrInvalidContentType = errors.New("invalid content type")

// ParseContentType converts a string (case-insensitive) into a ContentType.
// Returns ErrInvalidContentType for unrecognized values.
func ParseContentType(s string) (ContentType, error) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(s)))
	if !ct.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidContentType, s)
	}
	return ct, nil
}

// IsValid reports whether the content type is one of the recognized values.
func (ct ContentType) IsValid() bool {
	switch ct {
	case ContentTypeMCQ, ContentTypeCheatSheet, ContentTypeDragDrop,
		ContentTypeTextualQA, ContentTypeListening:
		return true
	default:
		return false
	}
}

// ContentTypes returns all recognized content types in a stable order.
func ContentTypes() []ContentType {
	return []ContentType{
		ContentTypeMCQ,
		ContentTypeCheatSheet,
		ContentTypeDragDrop,
		ContentTypeTextualQA,
		ContentTypeListening,
	}
}
