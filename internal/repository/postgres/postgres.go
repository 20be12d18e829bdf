// Package postgres keeps the edge table in PostgreSQL through a pgx pool.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/graphio"
)

const schema = `
CREATE TABLE IF NOT EXISTS city_edges (
	id               BIGSERIAL PRIMARY KEY,
	city1            TEXT NOT NULL,
	city2            TEXT NOT NULL,
	distance_between DOUBLE PRECISION NOT NULL
)`

// Store is the PostgreSQL-backed repository.
type Store struct {
	pool      *pgxpool.Pool
	tableName string
	opts      []core.GraphOption
	log       *zap.Logger
}

// Open connects to dsn, pings the server and ensures the schema.
func Open(ctx context.Context, dsn string, log *zap.Logger, opts ...core.GraphOption) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	if _, err = pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: create schema: %w", err)
	}

	return New(pool, log, opts...), nil
}

// New wraps an existing pool. The schema must exist.
func New(pool *pgxpool.Pool, log *zap.Logger, opts ...core.GraphOption) *Store {
	if log == nil {
		log = zap.NewNop()
	}

	return &Store{pool: pool, tableName: "city_edges", opts: opts, log: log}
}

// Name identifies the backend in logs.
func (s *Store) Name() string { return "postgres" }

// Load reads every row in id order; an empty table yields an empty graph.
func (s *Store) Load(ctx context.Context) (*core.Graph, error) {
	if s.pool == nil {
		return nil, fmt.Errorf("%w: postgres: no connection pool", graphio.ErrIO)
	}
	query := fmt.Sprintf(`SELECT city1, city2, distance_between FROM %s ORDER BY id`, s.tableName)
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: postgres: query: %w", graphio.ErrIO, err)
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
			return nil, fmt.Errorf("%w: postgres: scan: %w", graphio.ErrIO, err)
		}
		if err = graphio.RestoreRow(g, line, a, b, d); err != nil {
			return nil, err
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: postgres: rows: %w", graphio.ErrIO, err)
	}
	s.log.Debug("graph loaded", zap.String("backend", s.Name()), zap.Int("edges", g.EdgeCount()))

	return g, nil
}

// Save replaces the table content with g's edges inside one transaction,
// streaming the rows with COPY.
func (s *Store) Save(ctx context.Context, g *core.Graph) (err error) {
	if g == nil {
		return core.ErrNilGraph
	}
	if s.pool == nil {
		return fmt.Errorf("%w: postgres: no connection pool", graphio.ErrIO)
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: postgres: begin: %w", graphio.ErrIO, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, s.tableName)); err != nil {
		return fmt.Errorf("%w: postgres: clear: %w", graphio.ErrIO, err)
	}

	edges := g.Edges()
	rows := make([][]any, len(edges))
	for i, e := range edges {
		rows[i] = []any{e.City1, e.City2, e.Distance}
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{s.tableName},
		[]string{graphio.FieldCity1, graphio.FieldCity2, graphio.FieldDistance},
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("%w: postgres: copy: %w", graphio.ErrIO, err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: postgres: commit: %w", graphio.ErrIO, err)
	}
	s.log.Debug("graph saved", zap.String("backend", s.Name()), zap.Int("edges", len(edges)))

	return nil
}

// Close releases the pool.
func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}

	return nil
}
