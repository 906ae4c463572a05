package types

import "time"

// ItemType is a named schema composed of field definitions. Types are
// compared and referenced by TypeID; Name is not required to be unique.
type ItemType struct {
	TypeID    string        `json:"type_id"`
	Name      string        `json:"name"`
	Fields    []FieldSchema `json:"fields"`
	CreatedAt time.Time     `json:"created_at"`
}

// Field returns the field schema with the given ID.
func (t *ItemType) Field(fieldID string) (FieldSchema, bool) {
	for _, f := range t.Fields {
		if f.FieldID == fieldID {
			return f, true
		}
	}
	return FieldSchema{}, false
}

// FieldByName returns the first field schema with the given name.
func (t *ItemType) FieldByName(name string) (FieldSchema, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSchema{}, false
}
