// Package sqlite implements the SQLite storage backend for Shelf.
// The three collections are held as ordered id→JSON document rows and
// round-tripped as whole snapshots.
package sqlite

// Schema DDL for the collection tables. Each collection keeps its entities
// as JSON documents with an explicit position so load order matches save
// order.
const (
	createItemTypes = `CREATE TABLE IF NOT EXISTS item_types (
    type_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    doc TEXT NOT NULL
);`

	createItems = `CREATE TABLE IF NOT EXISTS items (
    item_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    doc TEXT NOT NULL
);`

	createProjects = `CREATE TABLE IF NOT EXISTS projects (
    project_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    doc TEXT NOT NULL
);`
)

// schemaDDL lists the statements run on Attach.
var schemaDDL = []string{
	createItemTypes,
	createItems,
	createProjects,
}
