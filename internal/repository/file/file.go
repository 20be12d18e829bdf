// Package file keeps the graph in a tabular file: loaded from one path,
// saved to another (by default updated_cities_distances.csv).
package file

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/graphio"
)

// Store is the file-backed repository.
type Store struct {
	source string
	dest   string
	opts   []core.GraphOption
	log    *zap.Logger
}

// New returns a Store reading source and writing dest. An empty dest means
// writing back to source.
func New(source, dest string, log *zap.Logger, opts ...core.GraphOption) *Store {
	if dest == "" {
		dest = source
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Store{source: source, dest: dest, opts: opts, log: log}
}

// Name identifies the backend in logs.
func (s *Store) Name() string { return "file" }

// Source is the path Load reads.
func (s *Store) Source() string { return s.source }

// Destination is the path Save writes.
func (s *Store) Destination() string { return s.dest }

// Load reads the source file; a missing file yields an empty graph.
func (s *Store) Load(ctx context.Context) (*core.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, err := graphio.Load(s.source, s.opts...)
	if err != nil {
		return nil, err
	}
	s.log.Debug("graph loaded",
		zap.String("path", s.source),
		zap.Int("cities", g.CityCount()),
		zap.Int("edges", g.EdgeCount()))

	return g, nil
}

// Save atomically replaces the destination file.
func (s *Store) Save(ctx context.Context, g *core.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := graphio.Save(s.dest, g); err != nil {
		return err
	}
	s.log.Debug("graph saved", zap.String("path", s.dest), zap.Int("edges", g.EdgeCount()))

	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
