// Package snapindex keeps a SQLite catalog of written pallet snapshots, so
// operators can locate the latest restore point without scanning the
// snapshot directory.
package snapindex

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

// Meta describes one written snapshot file.
type Meta struct {
	Path      string
	Entities  int
	Bytes     int64
	SHA256    string
	CreatedAt time.Time
}

// Describe stats and hashes an existing snapshot file.
func Describe(path string, entities int) (Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return Meta{}, err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return Meta{}, err
	}
	return Meta{
		Path:      path,
		Entities:  entities,
		Bytes:     n,
		SHA256:    hex.EncodeToString(h.Sum(nil)),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Index is a snapshot catalog backed by a SQLite file.
type Index struct {
	db  *sql.DB
	log *slog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	path       TEXT    NOT NULL,
	entities   INTEGER NOT NULL,
	bytes      INTEGER NOT NULL,
	sha256     TEXT    NOT NULL,
	created_at TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS snapshots_created_at ON snapshots(created_at);
`

// Open opens or creates the catalog at path.
func Open(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &Index{db: db, log: slog.Default()}, nil
}

// Record inserts one snapshot row.
func (ix *Index) Record(ctx context.Context, m Meta) error {
	_, err := ix.db.ExecContext(ctx,
		`INSERT INTO snapshots (path, entities, bytes, sha256, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.Path, m.Entities, m.Bytes, m.SHA256, m.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	ix.log.Info("snapshot recorded", "path", m.Path, "entities", m.Entities, "bytes", m.Bytes)
	return nil
}

// Latest returns the most recently recorded snapshot, or ok=false when the
// catalog is empty.
func (ix *Index) Latest(ctx context.Context) (Meta, bool, error) {
	row := ix.db.QueryRowContext(ctx,
		`SELECT path, entities, bytes, sha256, created_at FROM snapshots ORDER BY id DESC LIMIT 1`)
	m, err := scanMeta(row.Scan)
	if err == sql.ErrNoRows {
		return Meta{}, false, nil
	}
	if err != nil {
		return Meta{}, false, err
	}
	return m, true, nil
}

// List returns every recorded snapshot, oldest first.
func (ix *Index) List(ctx context.Context) ([]Meta, error) {
	rows, err := ix.db.QueryContext(ctx,
		`SELECT path, entities, bytes, sha256, created_at FROM snapshots ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []Meta
	for rows.Next() {
		m, err := scanMeta(rows.Scan)
		if err != nil {
			return nil, err
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

func (ix *Index) Close() error {
	return ix.db.Close()
}

func scanMeta(scan func(...any) error) (Meta, error) {
	var m Meta
	var createdAt string
	if err := scan(&m.Path, &m.Entities, &m.Bytes, &m.SHA256, &createdAt); err != nil {
		return Meta{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Meta{}, fmt.Errorf("parse created_at: %w", err)
	}
	m.CreatedAt = t
	return m, nil
}
