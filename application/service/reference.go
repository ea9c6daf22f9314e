package service

import (
	"context"
	"fmt"

	"github.com/jordienr/docsite/domain/reference"
)

// Reference serves the reference documentation registry.
type Reference struct {
	list reference.List
}

// NewReference creates a Reference service over a validated registry.
func NewReference(list reference.List) *Reference {
	return &Reference{list: list}
}

// Groups returns every reference group in canonical order.
func (r *Reference) Groups(_ context.Context) []reference.Group {
	return r.list.Groups()
}

// Entries returns every reference entry flattened in group order.
func (r *Reference) Entries(_ context.Context) []reference.Entry {
	return r.list.Entries()
}

// Entry finds a reference entry by its display name.
func (r *Reference) Entry(_ context.Context, name string) (reference.Entry, error) {
	e, ok := r.list.Entry(name)
	if !ok {
		return reference.Entry{}, fmt.Errorf("%q: %w", name, ErrEntryNotFound)
	}
	return e, nil
}
