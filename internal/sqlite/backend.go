package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// databaseFile is the SQLite file created inside DataDir.
const databaseFile = "shelf.db"

// Backend implements the types.Store interface using SQLite. Snapshots are
// saved all-or-nothing: Save rewrites the three collections in a single
// transaction.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, opens the database file, and bootstraps the
// schema. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, databaseFile))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent: detaching a detached backend
// succeeds.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	b.db = nil
	return nil
}

// Load reads the stored snapshot. A fresh database yields empty collections.
func (b *Backend) Load() (types.Snapshot, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var snap types.Snapshot
	if !b.attached {
		return snap, types.ErrStoreDetached
	}

	if err := loadCollection(b.db, "item_types", &snap.Types); err != nil {
		return types.Snapshot{}, err
	}
	if err := loadCollection(b.db, "items", &snap.Items); err != nil {
		return types.Snapshot{}, err
	}
	if err := loadCollection(b.db, "projects", &snap.Projects); err != nil {
		return types.Snapshot{}, err
	}
	return snap, nil
}

// Save replaces the stored snapshot with the given one in a single
// transaction.
func (b *Backend) Save(snap types.Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if err := saveCollection(tx, "item_types", "type_id", idsAndDocs(snap.Types, func(t types.ItemType) string { return t.TypeID })); err != nil {
		return err
	}
	if err := saveCollection(tx, "items", "item_id", idsAndDocs(snap.Items, func(i types.Item) string { return i.ItemID })); err != nil {
		return err
	}
	if err := saveCollection(tx, "projects", "project_id", idsAndDocs(snap.Projects, func(p types.Project) string { return p.ProjectID })); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// row pairs an entity ID with its JSON document.
type row struct {
	id  string
	doc any
}

// idsAndDocs builds the rows for one collection.
func idsAndDocs[T any](entities []T, id func(T) string) []row {
	rows := make([]row, len(entities))
	for i, e := range entities {
		rows[i] = row{id: id(e), doc: e}
	}
	return rows
}

// loadCollection reads every document of a table, in position order, into
// the destination slice.
func loadCollection[T any](db *sql.DB, table string, dest *[]T) error {
	rows, err := db.Query(fmt.Sprintf("SELECT doc FROM %s ORDER BY position", table))
	if err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		var entity T
		if err := json.Unmarshal([]byte(doc), &entity); err != nil {
			return fmt.Errorf("decode %s document: %w", table, err)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}
	*dest = out
	return nil
}

// saveCollection rewrites one table with the given rows inside the caller's
// transaction.
func saveCollection(tx *sql.Tx, table, idColumn string, rows []row) error {
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s, position, doc) VALUES (?, ?, ?)", table, idColumn))
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", table, err)
	}
	defer stmt.Close()

	for i, r := range rows {
		doc, err := json.Marshal(r.doc)
		if err != nil {
			return fmt.Errorf("encode %s document: %w", table, err)
		}
		if _, err := stmt.Exec(r.id, i, string(doc)); err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}
	return nil
}
