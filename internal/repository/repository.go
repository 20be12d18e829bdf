// Package repository defines where the long-lived graph is persisted and
// picks the backend named by the configuration.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/internal/config"
	"github.com/katalvlaran/citygraph/internal/repository/file"
	"github.com/katalvlaran/citygraph/internal/repository/postgres"
	"github.com/katalvlaran/citygraph/internal/repository/sqlite"
)

// Repository loads and saves a whole graph.
//
// Load on an empty backend returns an empty graph, never an error.
// Save replaces the previous content; on failure the stored content and
// the passed graph are unchanged.
type Repository interface {
	Name() string
	Load(ctx context.Context) (*core.Graph, error)
	Save(ctx context.Context, g *core.Graph) error
	Close() error
}

var (
	_ Repository = (*file.Store)(nil)
	_ Repository = (*sqlite.Store)(nil)
	_ Repository = (*postgres.Store)(nil)
)

// GraphOptions converts configuration flags into graph options.
func GraphOptions(cfg config.Config) []core.GraphOption {
	var opts []core.GraphOption
	if cfg.MergeParallel {
		opts = append(opts, core.WithMergeParallel())
	}

	return opts
}

// Open returns the Repository selected by cfg.Backend.
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (Repository, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opts := GraphOptions(cfg)
	log = log.With(zap.String("backend", cfg.Backend))

	switch cfg.Backend {
	case config.BackendFile:
		return file.New(cfg.DataPath, cfg.OutputPath, log, opts...), nil
	case config.BackendSQLite:
		s, err := sqlite.Open(ctx, cfg.DSN, log, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendPostgres:
		s, err := postgres.Open(ctx, cfg.DSN, log, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalidConfig, cfg.Backend)
	}
}
