package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// productType builds a snapshot with one "Products" type: required Name and
// Price, optional Notes.
func productType(t *testing.T) (types.Snapshot, types.ItemType) {
	t.Helper()
	snap, created, err := CreateType(types.Snapshot{}, "Products", []FieldDraft{
		{Name: "Name", Kind: types.KindText, Required: true},
		{Name: "Price", Kind: types.KindNumber, Required: true},
		{Name: "Notes", Kind: types.KindText},
	})
	require.NoError(t, err)
	return snap, created
}

func TestCreateItem(t *testing.T) {
	t.Run("snapshots the type name", func(t *testing.T) {
		snap, pt := productType(t)
		snap, item, err := CreateItem(snap, pt, map[string]string{
			pt.Fields[0].FieldID: "Widget",
			pt.Fields[1].FieldID: "9.99",
		})
		require.NoError(t, err)

		assert.Equal(t, "Products", item.TypeName)
		assert.Equal(t, pt.TypeID, item.TypeID)
		assert.NotEmpty(t, item.ItemID)
		assert.False(t, item.CreatedAt.IsZero())
		require.Len(t, snap.Items, 1)
	})

	t.Run("names every missing required field", func(t *testing.T) {
		snap, pt := productType(t)
		_, _, err := CreateItem(snap, pt, map[string]string{})
		require.Error(t, err)

		var verr *types.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Violations, 2)

		fields := []string{verr.Violations[0].Field, verr.Violations[1].Field}
		assert.Contains(t, fields, pt.Fields[0].FieldID)
		assert.Contains(t, fields, pt.Fields[1].FieldID)
	})

	t.Run("rejects non-coercible number", func(t *testing.T) {
		snap, pt := productType(t)
		_, _, err := CreateItem(snap, pt, map[string]string{
			pt.Fields[0].FieldID: "Widget",
			pt.Fields[1].FieldID: "cheap",
		})
		require.Error(t, err)

		var verr *types.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Violations, 1)
		assert.Equal(t, pt.Fields[1].FieldID, verr.Violations[0].Field)
	})

	t.Run("whitespace counts as empty", func(t *testing.T) {
		snap, pt := productType(t)
		_, _, err := CreateItem(snap, pt, map[string]string{
			pt.Fields[0].FieldID: "   ",
			pt.Fields[1].FieldID: "1",
		})
		require.Error(t, err)
	})

	t.Run("optional field may be absent", func(t *testing.T) {
		snap, pt := productType(t)
		_, item, err := CreateItem(snap, pt, map[string]string{
			pt.Fields[0].FieldID: "Widget",
			pt.Fields[1].FieldID: "1",
		})
		require.NoError(t, err)
		assert.Equal(t, "", item.Value(pt.Fields[2].FieldID))
	})

	t.Run("no partial application on failure", func(t *testing.T) {
		snap, pt := productType(t)
		out, _, err := CreateItem(snap, pt, map[string]string{})
		require.Error(t, err)
		assert.Len(t, out.Items, len(snap.Items))
	})
}

func TestDeleteItems(t *testing.T) {
	// Snapshot with three items and one project referencing all of them.
	build := func(t *testing.T) (types.Snapshot, types.ItemType, []types.Item, types.Project) {
		t.Helper()
		snap, pt := productType(t)

		items := make([]types.Item, 3)
		for i, name := range []string{"A", "B", "C"} {
			var err error
			snap, items[i], err = CreateItem(snap, pt, map[string]string{
				pt.Fields[0].FieldID: name,
				pt.Fields[1].FieldID: "1",
			})
			require.NoError(t, err)
		}

		snap, p, err := CreateProject(snap, "Build", "", "Garage")
		require.NoError(t, err)
		snap, p, err = AddProjectItems(snap, p.ProjectID, []string{
			items[0].ItemID, items[1].ItemID, items[2].ItemID,
		})
		require.NoError(t, err)
		return snap, pt, items, p
	}

	t.Run("removes items and cascades membership cleanup", func(t *testing.T) {
		snap, _, items, p := build(t)

		// Age the membership timestamp so the refresh is observable.
		for i := range snap.Projects {
			snap.Projects[i].UpdatedAt = time.Now().Add(-time.Hour)
		}
		before := snap.Projects[0].UpdatedAt

		snap, removed := DeleteItems(snap, []string{items[1].ItemID})
		require.Len(t, removed, 1)
		assert.Equal(t, items[1].ItemID, removed[0].ItemID)
		assert.Len(t, snap.Items, 2)

		got, err := GetProject(snap, p.ProjectID)
		require.NoError(t, err)
		assert.Equal(t, []string{items[0].ItemID, items[2].ItemID}, got.ItemIDs)
		assert.True(t, got.UpdatedAt.After(before), "expected UpdatedAt to move forward")
	})

	t.Run("unknown ids are ignored", func(t *testing.T) {
		snap, _, _, _ := build(t)
		out, removed := DeleteItems(snap, []string{"missing"})
		assert.Empty(t, removed)
		assert.Len(t, out.Items, len(snap.Items))
	})

	t.Run("untouched projects keep their UpdatedAt", func(t *testing.T) {
		snap, _, items, _ := build(t)
		snap, other, err := CreateProject(snap, "Other", "", "Shed")
		require.NoError(t, err)

		for i := range snap.Projects {
			snap.Projects[i].UpdatedAt = time.Now().Add(-time.Hour)
		}
		before, err := GetProject(snap, other.ProjectID)
		require.NoError(t, err)

		snap, _ = DeleteItems(snap, []string{items[0].ItemID})
		after, err := GetProject(snap, other.ProjectID)
		require.NoError(t, err)
		assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
	})
}

func TestGetItem(t *testing.T) {
	snap, pt := productType(t)
	snap, item, err := CreateItem(snap, pt, map[string]string{
		pt.Fields[0].FieldID: "Widget",
		pt.Fields[1].FieldID: "1",
	})
	require.NoError(t, err)

	got, err := GetItem(snap, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, item.ItemID, got.ItemID)

	_, err = GetItem(snap, "missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
