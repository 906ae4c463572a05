package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// FieldDraft is the caller-supplied description of one field for CreateType.
// Options is the raw option input for select fields; it is split on commas,
// trimmed, and cleaned of empty tokens.
type FieldDraft struct {
	Name     string
	Kind     string
	Required bool
	Options  string
}

// CreateType validates the drafts, assigns IDs, and appends a new item type
// to the snapshot. The type name must be non-empty and at least one field
// draft must be supplied. Select fields need at least one option after
// cleaning; other kinds must not carry options. All violations are collected
// into a single ValidationError.
func CreateType(snap types.Snapshot, name string, drafts []FieldDraft) (types.Snapshot, types.ItemType, error) {
	verr := &types.ValidationError{}
	if strings.TrimSpace(name) == "" {
		verr.Add("name", "name is required")
	}
	if len(drafts) == 0 {
		verr.Add("fields", "at least one field is required")
	}

	fields := make([]types.FieldSchema, 0, len(drafts))
	for i, draft := range drafts {
		label := draft.Name
		if label == "" {
			label = fmt.Sprintf("field %d", i+1)
		}
		if strings.TrimSpace(draft.Name) == "" {
			verr.Add(label, "field name is required")
		}
		if !types.IsValidFieldKind(draft.Kind) {
			verr.Add(label, fmt.Sprintf("unknown field kind %q", draft.Kind))
			continue
		}

		options := types.ParseOptions(draft.Options)
		if draft.Kind == types.KindSelect {
			if len(options) == 0 {
				verr.Add(label, "select fields need at least one option")
			}
		} else {
			if len(options) > 0 {
				verr.Add(label, fmt.Sprintf("%s fields must not carry options", draft.Kind))
			}
			options = nil
		}

		fields = append(fields, types.FieldSchema{
			FieldID:  newID(),
			Name:     strings.TrimSpace(draft.Name),
			Kind:     draft.Kind,
			Required: draft.Required,
			Options:  options,
		})
	}

	if err := verr.Err(); err != nil {
		return snap, types.ItemType{}, err
	}

	t := types.ItemType{
		TypeID:    newID(),
		Name:      strings.TrimSpace(name),
		Fields:    fields,
		CreatedAt: time.Now(),
	}

	out := snap
	out.Types = append(append([]types.ItemType{}, snap.Types...), t)
	return out, t, nil
}

// ListTypes returns the registered item types in registration order.
func ListTypes(snap types.Snapshot) []types.ItemType {
	return snap.Types
}

// GetType returns the item type with the given ID.
// Returns ErrNotFound if no such type is registered.
func GetType(snap types.Snapshot, typeID string) (types.ItemType, error) {
	if typeID == "" {
		return types.ItemType{}, types.ErrInvalidID
	}
	for _, t := range snap.Types {
		if t.TypeID == typeID {
			return t, nil
		}
	}
	return types.ItemType{}, types.ErrNotFound
}

// TypeByName returns the first registered item type with the given name.
// When several types share a name the earliest registration wins; this is a
// known limitation of name-based resolution.
func TypeByName(snap types.Snapshot, name string) (types.ItemType, bool) {
	for _, t := range snap.Types {
		if t.Name == name {
			return t, true
		}
	}
	return types.ItemType{}, false
}
