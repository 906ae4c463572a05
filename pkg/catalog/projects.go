package catalog

import (
	"strings"
	"time"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// CreateProject appends a new project with empty membership. Name and
// location are required; description may be empty. Violations are collected
// into a single ValidationError.
func CreateProject(snap types.Snapshot, name, description, location string) (types.Snapshot, types.Project, error) {
	verr := &types.ValidationError{}
	if strings.TrimSpace(name) == "" {
		verr.Add("name", "name is required")
	}
	if strings.TrimSpace(location) == "" {
		verr.Add("location", "location is required")
	}
	if err := verr.Err(); err != nil {
		return snap, types.Project{}, err
	}

	now := time.Now()
	p := types.Project{
		ProjectID:   newID(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Location:    strings.TrimSpace(location),
		ItemIDs:     []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	out := snap
	out.Projects = append(append([]types.Project{}, snap.Projects...), p)
	return out, p, nil
}

// ListProjects returns the projects in creation order.
func ListProjects(snap types.Snapshot) []types.Project {
	return snap.Projects
}

// GetProject returns the project with the given ID.
// Returns ErrNotFound if no such project exists.
func GetProject(snap types.Snapshot, projectID string) (types.Project, error) {
	if projectID == "" {
		return types.Project{}, types.ErrInvalidID
	}
	for _, p := range snap.Projects {
		if p.ProjectID == projectID {
			return p, nil
		}
	}
	return types.Project{}, types.ErrNotFound
}

// AddProjectItems appends the given item IDs to the project's membership
// with set semantics and refreshes its UpdatedAt.
// Returns ErrNotFound if the project does not exist.
func AddProjectItems(snap types.Snapshot, projectID string, ids []string) (types.Snapshot, types.Project, error) {
	return updateProject(snap, projectID, func(p *types.Project) {
		p.AddItems(ids)
	})
}

// RemoveProjectItems removes the given item IDs from the project's
// membership and refreshes its UpdatedAt. Unknown IDs are no-ops.
// Returns ErrNotFound if the project does not exist.
func RemoveProjectItems(snap types.Snapshot, projectID string, ids []string) (types.Snapshot, types.Project, error) {
	return updateProject(snap, projectID, func(p *types.Project) {
		p.RemoveItems(ids)
	})
}

// DeleteProject removes the project with the given ID. The referenced items
// are not touched; the project never owned them.
// Returns ErrNotFound if no such project exists.
func DeleteProject(snap types.Snapshot, projectID string) (types.Snapshot, error) {
	if projectID == "" {
		return snap, types.ErrInvalidID
	}
	kept := make([]types.Project, 0, len(snap.Projects))
	found := false
	for _, p := range snap.Projects {
		if p.ProjectID == projectID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return snap, types.ErrNotFound
	}
	out := snap
	out.Projects = kept
	return out, nil
}

// OnItemsDeleted strips the deleted IDs from every project's membership.
// Only projects that actually lose a member get a refreshed UpdatedAt.
// The deletion path calls this so stale references do not accumulate.
func OnItemsDeleted(projects []types.Project, deletedIDs []string) []types.Project {
	out := make([]types.Project, len(projects))
	for i, p := range projects {
		p.ItemIDs = append([]string{}, p.ItemIDs...)
		p.PruneDeleted(deletedIDs)
		out[i] = p
	}
	return out
}

// ProjectItems resolves the project's membership against the item
// collection, in membership order. Dangling IDs are filtered silently.
func ProjectItems(snap types.Snapshot, p types.Project) []types.Item {
	byID := make(map[string]types.Item, len(snap.Items))
	for _, item := range snap.Items {
		byID[item.ItemID] = item
	}
	resolved := make([]types.Item, 0, len(p.ItemIDs))
	for _, id := range p.ItemIDs {
		if item, ok := byID[id]; ok {
			resolved = append(resolved, item)
		}
	}
	return resolved
}

// updateProject applies fn to a copy of the addressed project and returns a
// snapshot with the copy swapped in.
func updateProject(snap types.Snapshot, projectID string, fn func(*types.Project)) (types.Snapshot, types.Project, error) {
	if projectID == "" {
		return snap, types.Project{}, types.ErrInvalidID
	}
	for i, p := range snap.Projects {
		if p.ProjectID != projectID {
			continue
		}
		p.ItemIDs = append([]string{}, p.ItemIDs...)
		fn(&p)

		projects := append([]types.Project{}, snap.Projects...)
		projects[i] = p

		out := snap
		out.Projects = projects
		return out, p, nil
	}
	return snap, types.Project{}, types.ErrNotFound
}
