package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citygraph/bfs"
	"github.com/katalvlaran/citygraph/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartNotFound)

	require.NoError(t, g.AddEdge("A", "B", 1))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Depths checks hop counts, order and parent links on a chain with a shortcut.
func TestBFS_Depths(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("A", "D", 100)) // one hop, however long
	require.NoError(t, g.AddEdge("A", "B", 2))   // parallel edge

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.True(t, res.Reached("B"))
	require.False(t, res.Reached("C"))

	_, err = res.PathTo("C")
	require.Error(t, err)
}

func TestBFS_Cancelled(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.True(t, errors.Is(err, context.Canceled))
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("Paris", "Lyon", 5))
	require.NoError(t, g.AddEdge("Lyon", "Marseille", 3))
	require.NoError(t, g.AddEdge("Tokyo", "Osaka", 500))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Lyon", "Marseille", "Paris"},
		{"Osaka", "Tokyo"},
	}, comps)

	empty, err := bfs.Components(core.NewGraph())
	require.NoError(t, err)
	require.Empty(t, empty)
}
