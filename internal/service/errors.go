package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidPage = errors.New("invalid page")
)

// ValidationError carries field-level messages for rejected input.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError builds a ValidationError with one message on one field.
func NewValidationError(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

// Add appends a message to a field.
func (v *ValidationError) Add(field, message string) {
	if v.Fields == nil {
		v.Fields = map[string][]string{}
	}
	v.Fields[field] = append(v.Fields[field], message)
}

// Empty reports whether no field has a message.
func (v *ValidationError) Empty() bool {
	return v == nil || len(v.Fields) == 0
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(v.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
