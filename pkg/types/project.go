package types

import "time"

// Project is a named collection referencing item instances by ID. ItemIDs is
// an insertion-ordered sequence with no duplicates. Membership is link-based:
// an ID may stop resolving when its item is deleted, and read paths filter
// such dangling IDs instead of failing.
type Project struct {
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ItemIDs     []string  `json:"item_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Contains reports whether the project references the given item ID.
func (p *Project) Contains(itemID string) bool {
	for _, id := range p.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// AddItems appends the given IDs, skipping any already present. Duplicates
// against existing membership are dropped silently. The IDs are not checked
// against the item collection. Refreshes UpdatedAt.
func (p *Project) AddItems(ids []string) {
	for _, id := range ids {
		if id == "" || p.Contains(id) {
			continue
		}
		p.ItemIDs = append(p.ItemIDs, id)
	}
	p.UpdatedAt = time.Now()
}

// RemoveItems removes the given IDs from the membership. Unknown IDs are
// no-ops. Refreshes UpdatedAt.
func (p *Project) RemoveItems(ids []string) {
	p.removeSet(toIDSet(ids))
	p.UpdatedAt = time.Now()
}

// PruneDeleted removes any of the deleted IDs from the membership and
// reports whether the membership changed. UpdatedAt is refreshed only when
// a removal actually happened.
func (p *Project) PruneDeleted(deletedIDs []string) bool {
	changed := p.removeSet(toIDSet(deletedIDs))
	if changed {
		p.UpdatedAt = time.Now()
	}
	return changed
}

// removeSet drops every member present in the set, preserving order, and
// reports whether anything was removed.
func (p *Project) removeSet(ids map[string]bool) bool {
	kept := p.ItemIDs[:0:0]
	for _, id := range p.ItemIDs {
		if !ids[id] {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(p.ItemIDs) {
		return false
	}
	p.ItemIDs = kept
	return true
}

func toIDSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
