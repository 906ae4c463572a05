package types

import (
	"strconv"
	"strings"
	"time"
)

// Field kinds determine what values a field accepts and how they render.
const (
	KindText   = "text"
	KindNumber = "number"
	KindDate   = "date"
	KindSelect = "select"
)

// validFieldKinds is the set of recognized field kinds.
var validFieldKinds = map[string]bool{
	KindText:   true,
	KindNumber: true,
	KindDate:   true,
	KindSelect: true,
}

// FieldSchema defines one typed, optionally-required attribute of an item
// type. Options is present and non-empty exactly when Kind is "select".
type FieldSchema struct {
	FieldID  string   `json:"field_id"`
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// IsValidFieldKind reports whether the given string is a recognized field kind.
func IsValidFieldKind(kind string) bool {
	return validFieldKinds[kind]
}

// ParseOptions splits a raw option string on commas, trims each token, and
// discards empty tokens. Returns an empty slice (not nil) for blank input.
func ParseOptions(raw string) []string {
	options := []string{}
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			options = append(options, token)
		}
	}
	return options
}

// dateValueFormat is the storage form of date field values.
const dateValueFormat = "2006-01-02"

// dateDisplayFormat is the rendered form of date field values in exports.
const dateDisplayFormat = "1/2/2006"

// kindBehavior bundles the per-kind validation and rendering rules so that
// components dispatch on the field kind in one place.
type kindBehavior struct {
	// validate checks a non-empty value supplied at creation time.
	validate func(f FieldSchema, value string) string
	// render returns the display form of a value for search and export.
	render func(value string) string
}

var kindBehaviors = map[string]kindBehavior{
	KindText: {
		validate: func(FieldSchema, string) string { return "" },
		render:   func(v string) string { return v },
	},
	KindNumber: {
		validate: func(_ FieldSchema, value string) string {
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				return "must be a number"
			}
			return ""
		},
		render: func(v string) string { return v },
	},
	KindDate: {
		validate: func(FieldSchema, string) string { return "" },
		render: func(v string) string {
			t, err := time.Parse(dateValueFormat, v)
			if err != nil {
				return v
			}
			return t.Format(dateDisplayFormat)
		},
	},
	KindSelect: {
		validate: func(f FieldSchema, value string) string {
			for _, opt := range f.Options {
				if opt == value {
					return ""
				}
			}
			return "not one of the declared options"
		},
		render: func(v string) string { return v },
	},
}

// ValidateValue checks a value supplied for this field at creation time.
// Returns an empty string if the value is acceptable, or a human-readable
// reason otherwise. Empty values are acceptable here; required-field
// enforcement is the caller's concern.
func (f FieldSchema) ValidateValue(value string) string {
	if value == "" {
		return ""
	}
	b, ok := kindBehaviors[f.Kind]
	if !ok {
		return ErrInvalidFieldKind.Error()
	}
	return b.validate(f, value)
}

// RenderValue returns the display form of a stored value. Date values in the
// storage form are rendered as a date string; all other kinds, and values
// that do not parse, render as-is. Empty values render as an empty string.
func (f FieldSchema) RenderValue(value string) string {
	if value == "" {
		return ""
	}
	b, ok := kindBehaviors[f.Kind]
	if !ok {
		return value
	}
	return b.render(value)
}
