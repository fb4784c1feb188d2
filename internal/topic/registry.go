package topic

import (
	"errors"
	"fmt"

	"github.com/phrazzld/courseforge-api/internal/domain"
)

// Common errors returned by the topic package
var (
	// ErrTopicNotFound is returned when a topic ID is not in the registry.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrDuplicateTopicID is returned when the catalog contains two topics
	// with the same ID.
	ErrDuplicateTopicID = errors.New("duplicate topic ID in catalog")
)

// Registry holds the immutable topic catalog. It is built once at startup
// and is safe for unsynchronized concurrent reads afterwards.
type Registry struct {
	ordered []domain.Topic
	byID    map[string]domain.Topic
}

// NewRegistry builds a Registry from the given topic definitions, preserving
// their order. Every definition is validated and IDs must be unique.
func NewRegistry(defs []domain.Topic) (*Registry, error) {
	r := &Registry{
		ordered: make([]domain.Topic, 0, len(defs)),
		byID:    make(map[string]domain.Topic, len(defs)),
	}

	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("invalid topic %q: %w", def.ID, err)
		}

		if _, exists := r.byID[def.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTopicID, def.ID)
		}

		r.ordered = append(r.ordered, def)
		r.byID[def.ID] = def
	}

	return r, nil
}

// NewDefaultRegistry builds a Registry from the built-in catalog.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(Catalog())
}

// List returns all topics in catalog order. The returned slice is a copy;
// callers cannot mutate the registry through it.
func (r *Registry) List() []domain.Topic {
	out := make([]domain.Topic, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Get returns the topic with the given ID.
// Returns ErrTopicNotFound if the ID is not registered.
func (r *Registry) Get(id string) (domain.Topic, error) {
	t, ok := r.byID[id]
	if !ok {
		return domain.Topic{}, fmt.Errorf("%w: %q", ErrTopicNotFound, id)
	}
	return t, nil
}

// Len returns the number of registered topics.
func (r *Registry) Len() int {
	return len(r.ordered)
}
