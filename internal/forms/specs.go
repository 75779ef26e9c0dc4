// Package forms holds the admin product-edit form state.
//
// The form is split in two: [ProductForm] owns the scalar fields and their
// pre-submit validation, and [SpecEditor] owns the ordered, independently
// editable list of free-text specification entries.
package forms

import (
	"encoding/json"
	"fmt"

	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
)

// Field identifies which half of a specification entry an edit targets.
type Field string

const (
	FieldKey   Field = "key"
	FieldValue Field = "value"
)

// SpecEditor maintains an ordered, editable list of specification entries.
//
// It has no hidden modes: four operations (add, update, remove, replace-all)
// and one derived view (Serialize). The only rejected transition is an
// out-of-range position.
type SpecEditor struct {
	entries []models.Specification
}

// NewSpecEditor creates an editor hydrated from the given records.
// Nil records initialize an empty sequence.
func NewSpecEditor(records []models.Specification) *SpecEditor {
	e := &SpecEditor{}
	e.Hydrate(records)
	return e
}

// Hydrate replaces the current sequence with the given ordered records.
// Used on initial load of an existing product.
func (e *SpecEditor) Hydrate(records []models.Specification) {
	e.entries = make([]models.Specification, len(records))
	copy(e.entries, records)
}

// Add appends a new entry with empty key and value and returns its position.
func (e *SpecEditor) Add() int {
	e.entries = append(e.entries, models.Specification{})
	return len(e.entries) - 1
}

// Update replaces one field of the entry at position in place.
//
// An out-of-range position or unknown field returns an error and leaves
// every entry untouched.
func (e *SpecEditor) Update(position int, field Field, value string) error {
	if position < 0 || position >= len(e.entries) {
		return fmt.Errorf("%w: %d (len %d)", shared.ErrInvalidPosition, position, len(e.entries))
	}

	switch field {
	case FieldKey:
		e.entries[position].Key = value
	case FieldValue:
		e.entries[position].Value = value
	default:
		return fmt.Errorf("%w: unknown field %q", shared.ErrInvalidArgument, field)
	}

	return nil
}

// Remove deletes the entry at position, shifting subsequent entries up.
// Positions held by callers are stale after a removal.
func (e *SpecEditor) Remove(position int) error {
	if position < 0 || position >= len(e.entries) {
		return fmt.Errorf("%w: %d (len %d)", shared.ErrInvalidPosition, position, len(e.entries))
	}

	e.entries = append(e.entries[:position], e.entries[position+1:]...)
	return nil
}

// Len returns the number of entries.
func (e *SpecEditor) Len() int {
	return len(e.entries)
}

// Entries returns a copy of the current ordered sequence.
func (e *SpecEditor) Entries() []models.Specification {
	out := make([]models.Specification, len(e.entries))
	copy(out, e.entries)
	return out
}

// Serialize produces the transport representation: a JSON array of
// {key, value} records in edit order.
//
// Blank entries pass through unfiltered; validating before submit is the
// form's responsibility, not the editor's.
func (e *SpecEditor) Serialize() ([]byte, error) {
	entries := e.entries
	if entries == nil {
		entries = []models.Specification{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize specifications: %w", err)
	}

	return data, nil
}
