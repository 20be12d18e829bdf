package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/internal/config"
	"github.com/katalvlaran/citygraph/internal/repository"
)

func TestOpen_FileBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	src := filepath.Join(dir, "cities.csv")
	require.NoError(t, os.WriteFile(src, []byte("city1,city2,distance_between\nA,B,2\n"), 0o644))

	cfg := config.Default()
	cfg.DataPath = src
	cfg.OutputPath = filepath.Join(dir, "out.csv")

	repo, err := repository.Open(ctx, cfg, nil)
	require.NoError(t, err)
	defer repo.Close()
	require.Equal(t, "file", repo.Name())

	g, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("B", "C", 3))
	require.NoError(t, repo.Save(ctx, g))

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Equal(t, "city1,city2,distance_between\nA,B,2\nB,C,3\n", string(data))

	orig, err := os.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, "city1,city2,distance_between\nA,B,2\n", string(orig), "source is not overwritten")
}

func TestOpen_SQLiteBackendWithMerge(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Backend = config.BackendSQLite
	cfg.DSN = filepath.Join(t.TempDir(), "graph.db")
	cfg.MergeParallel = true

	repo, err := repository.Open(ctx, cfg, nil)
	require.NoError(t, err)
	defer repo.Close()

	g, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, g.MergeParallel())
}

func TestOpen_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "tape"

	_, err := repository.Open(context.Background(), cfg, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestFileStore_CancelledContext(t *testing.T) {
	cfg := config.Default()
	cfg.DataPath = filepath.Join(t.TempDir(), "none.csv")
	repo, err := repository.Open(context.Background(), cfg, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, repo.Save(ctx, core.NewGraph()), context.Canceled)
}
