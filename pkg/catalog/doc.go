// Package catalog implements the operations of the Shelf core: type
// registration, item creation and deletion, project membership, and search.
//
// Every operation takes a types.Snapshot value and returns a new one; the
// caller owns the single current snapshot and persists it through a
// types.Store. No operation mutates its input, and no operation partially
// applies: on error the input snapshot is still the current state.
package catalog
