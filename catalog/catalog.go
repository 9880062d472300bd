// SPDX-License-Identifier: MIT
// Package: terrain/catalog
//
// catalog.go - the build catalog over database/sql.
//
// Contract:
//   • Add assigns ID and CreatedAt when they are zero and writes the entry
//     and its bays in one transaction.
//   • Get returns ErrNotFound for an unknown id; List never does.
//   • Delete removes the entry and its bays, ErrNotFound if absent.

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/terrain/internal/monitoring"
)

// ErrNotFound indicates an id with no catalog entry.
var ErrNotFound = errors.New("catalog: entry not found")

// Catalog is an open build catalog.
type Catalog struct {
	db *sql.DB
}

// Open opens (creating if needed) the catalog at path and migrates it to the
// latest schema. ":memory:" gives a private in-memory catalog.
func Open(ctx context.Context, path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("Open: %s: %w", path, err)
	}
	c := &Catalog{db: db}
	if err := c.migrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("Open: %s: %w", path, err)
	}
	monitoring.Logf("catalog: opened %s", path)
	return c, nil
}

// Close closes the database.
func (c *Catalog) Close() error { return c.db.Close() }

// Add records e. ID and CreatedAt are filled in when zero.
func (c *Catalog) Add(ctx context.Context, e *Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO builds (id, name, kind, mode, recipe, size_x, size_y, size_z, facets, file, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Kind, e.Mode, string(e.Recipe),
		e.Size.X, e.Size.Y, e.Size.Z, e.Facets, e.File, e.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("Add: %s: %w", e.ID, err)
	}
	for _, b := range e.Bays {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO build_bays (build_id, idx, side, center_x, center_y,
				has_door, has_window, has_ladder, has_floor_cut, has_hatch)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, b.Index, b.Side, b.X, b.Y, b.Door, b.Window, b.Ladder, b.FloorCut, b.Hatch,
		)
		if err != nil {
			return fmt.Errorf("Add: %s: bay %d: %w", e.ID, b.Index, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	monitoring.Logf("catalog: recorded %s %q (%d bays)", e.ID, e.Name, len(e.Bays))
	return nil
}

const selectBuild = `
	SELECT id, name, kind, mode, recipe, size_x, size_y, size_z, facets, file, created_at
	FROM builds`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var (
		e       Entry
		recipe  string
		created int64
	)
	err := s.Scan(&e.ID, &e.Name, &e.Kind, &e.Mode, &recipe,
		&e.Size.X, &e.Size.Y, &e.Size.Z, &e.Facets, &e.File, &created)
	if err != nil {
		return nil, err
	}
	e.Recipe = []byte(recipe)
	e.CreatedAt = time.Unix(0, created).UTC()
	return &e, nil
}

// Get returns the entry with its bay table.
func (c *Catalog) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	e, err := scanEntry(c.db.QueryRowContext(ctx, selectBuild+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Get: %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %s: %w", id, err)
	}
	if e.Bays, err = c.bays(ctx, id); err != nil {
		return nil, fmt.Errorf("Get: %s: %w", id, err)
	}
	return e, nil
}

func (c *Catalog) bays(ctx context.Context, id uuid.UUID) ([]Bay, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT idx, side, center_x, center_y, has_door, has_window, has_ladder, has_floor_cut, has_hatch
		FROM build_bays WHERE build_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Bay
	for rows.Next() {
		var b Bay
		if err := rows.Scan(&b.Index, &b.Side, &b.X, &b.Y,
			&b.Door, &b.Window, &b.Ladder, &b.FloorCut, &b.Hatch); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// List returns entries newest first, without their bay tables. A non-empty
// name keeps only entries of that name.
func (c *Catalog) List(ctx context.Context, name string) ([]Entry, error) {
	query, args := selectBuild+` ORDER BY created_at DESC, id`, []any(nil)
	if name != "" {
		query, args = selectBuild+` WHERE name = ? ORDER BY created_at DESC, id`, []any{name}
	}
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return out, nil
}

// Delete removes the entry and its bays.
func (c *Catalog) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM build_bays WHERE build_id = ?`, id); err != nil {
		return fmt.Errorf("Delete: %s: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM builds WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Delete: %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("Delete: %s: %w", id, err)
	} else if n == 0 {
		return fmt.Errorf("Delete: %s: %w", id, ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	monitoring.Logf("catalog: deleted %s", id)
	return nil
}
