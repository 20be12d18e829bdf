// Package sqlite keeps the edge table in an SQLite database file.
//
// The table mirrors the CSV layout: one row per undirected edge, read back
// in insertion (id) order so that Load reproduces the saved enumeration.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/graphio"
)

const schema = `
CREATE TABLE IF NOT EXISTS city_edges (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	city1            TEXT NOT NULL,
	city2            TEXT NOT NULL,
	distance_between REAL NOT NULL
)`

// Store is the SQLite-backed repository.
type Store struct {
	db   *sql.DB
	opts []core.GraphOption
	log  *zap.Logger
}

// Open opens (creating if needed) the database at dsn and ensures the schema.
func Open(ctx context.Context, dsn string, log *zap.Logger, opts ...core.GraphOption) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// one writer; SQLite serializes anyway
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}

	return New(db, log, opts...), nil
}

// New wraps an already opened database. The schema must exist.
func New(db *sql.DB, log *zap.Logger, opts ...core.GraphOption) *Store {
	if log == nil {
		log = zap.NewNop()
	}

	return &Store{db: db, opts: opts, log: log}
}

// Name identifies the backend in logs.
func (s *Store) Name() string { return "sqlite" }

// Load reads every row; an empty table yields an empty graph.
// Bad rows abort with *graphio.MalformedInputError (Line = row position).
func (s *Store) Load(ctx context.Context) (*core.Graph, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT city1, city2, distance_between FROM city_edges ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite: query: %w", graphio.ErrIO, err)
	}
	defer rows.Close()

	g := core.NewGraph(s.opts...)
	var (
		a, b string
		d    float64
		line int
	)
	for rows.Next() {
		line++
		if err = rows.Scan(&a, &b, &d); err != nil {
			return nil, fmt.Errorf("%w: sqlite: scan: %w", graphio.ErrIO, err)
		}
		if err = graphio.RestoreRow(g, line, a, b, d); err != nil {
			return nil, err
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: sqlite: rows: %w", graphio.ErrIO, err)
	}
	s.log.Debug("graph loaded", zap.String("backend", s.Name()), zap.Int("edges", g.EdgeCount()))

	return g, nil
}

// Save replaces the whole table with g's edges in one transaction.
func (s *Store) Save(ctx context.Context, g *core.Graph) (err error) {
	if g == nil {
		return core.ErrNilGraph
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: sqlite: begin: %w", graphio.ErrIO, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM city_edges`); err != nil {
		return fmt.Errorf("%w: sqlite: clear: %w", graphio.ErrIO, err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO city_edges (city1, city2, distance_between) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: sqlite: prepare: %w", graphio.ErrIO, err)
	}
	defer stmt.Close()

	edges := g.Edges()
	for _, e := range edges {
		if _, err = stmt.ExecContext(ctx, e.City1, e.City2, e.Distance); err != nil {
			return fmt.Errorf("%w: sqlite: insert: %w", graphio.ErrIO, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: sqlite: commit: %w", graphio.ErrIO, err)
	}
	s.log.Debug("graph saved", zap.String("backend", s.Name()), zap.Int("edges", len(edges)))

	return nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
