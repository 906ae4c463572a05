package types

import (
	"errors"
	"fmt"
	"strings"
)

// Lookup and entity errors.
var (
	ErrNotFound  = errors.New("entity not found")
	ErrInvalidID = errors.New("invalid entity ID")
)

// Entity validation errors.
var (
	ErrInvalidFieldKind = errors.New("invalid field kind")
	ErrInvalidName      = errors.New("invalid name")
)

// Violation describes one failed validation check. Field holds the field ID
// (or draft name) the violation applies to; it is empty for violations that
// concern the entity as a whole.
type Violation struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationError reports every violation found while validating an entity.
// Creation operations collect all violations before failing so the caller
// can surface the complete set at once.
type ValidationError struct {
	Violations []Violation
}

// Error returns all violations joined with "; ".
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
		} else {
			parts = append(parts, v.Message)
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a violation.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message})
}

// Err returns the error if any violations were recorded, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}
