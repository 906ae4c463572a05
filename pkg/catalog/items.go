package catalog

import (
	"strings"
	"time"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// CreateItem validates the data against the type and appends a new item to
// the snapshot. Validation collects every violation before failing: each
// required field whose value is missing or empty is named, as is every
// supplied value that fails its field's kind check. On success the item
// snapshots the type's name as TypeName.
func CreateItem(snap types.Snapshot, t types.ItemType, data map[string]string) (types.Snapshot, types.Item, error) {
	verr := &types.ValidationError{}
	values := make(map[string]string, len(t.Fields))

	for _, f := range t.Fields {
		value := strings.TrimSpace(data[f.FieldID])
		if f.Required && value == "" {
			verr.Add(f.FieldID, f.Name+" is required")
			continue
		}
		if reason := f.ValidateValue(value); reason != "" {
			verr.Add(f.FieldID, f.Name+" "+reason)
			continue
		}
		if value != "" {
			values[f.FieldID] = value
		}
	}

	if err := verr.Err(); err != nil {
		return snap, types.Item{}, err
	}

	item := types.Item{
		ItemID:    newID(),
		TypeID:    t.TypeID,
		TypeName:  t.Name,
		Data:      values,
		CreatedAt: time.Now(),
	}

	out := snap
	out.Items = append(append([]types.Item{}, snap.Items...), item)
	return out, item, nil
}

// GetItem returns the item with the given ID.
// Returns ErrNotFound if no such item exists.
func GetItem(snap types.Snapshot, itemID string) (types.Item, error) {
	if itemID == "" {
		return types.Item{}, types.ErrInvalidID
	}
	for _, item := range snap.Items {
		if item.ItemID == itemID {
			return item, nil
		}
	}
	return types.Item{}, types.ErrNotFound
}

// DeleteItems removes the items with the given IDs and strips them from
// every project membership in the same returned snapshot, so no caller
// observes an item gone but still referenced. Unknown IDs are ignored.
// Returns the removed items in collection order.
func DeleteItems(snap types.Snapshot, ids []string) (types.Snapshot, []types.Item) {
	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}

	kept := make([]types.Item, 0, len(snap.Items))
	removed := []types.Item{}
	for _, item := range snap.Items {
		if doomed[item.ItemID] {
			removed = append(removed, item)
		} else {
			kept = append(kept, item)
		}
	}
	if len(removed) == 0 {
		return snap, removed
	}

	removedIDs := make([]string, len(removed))
	for i, item := range removed {
		removedIDs[i] = item.ItemID
	}

	out := snap
	out.Items = kept
	out.Projects = OnItemsDeleted(snap.Projects, removedIDs)
	return out, removed
}
