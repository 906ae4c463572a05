package types

import "time"

// Item is a record created against an item type. TypeName is a snapshot of
// the type's name taken at creation time; it is never updated afterwards.
// Data maps field IDs to values in their textual form. Fields absent from
// Data are treated as empty, not as errors.
type Item struct {
	ItemID    string            `json:"item_id"`
	TypeID    string            `json:"type_id"`
	TypeName  string            `json:"type_name"`
	Data      map[string]string `json:"data"`
	CreatedAt time.Time         `json:"created_at"`
}

// Value returns the stored value for a field ID, or "" when unset.
func (i *Item) Value(fieldID string) string {
	return i.Data[fieldID]
}
