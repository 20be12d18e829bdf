package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/internal/shell"
)

type memStore struct {
	graph *core.Graph
	saves int
}

func (m *memStore) Load(context.Context) (*core.Graph, error) { return m.graph.Clone(), nil }

func (m *memStore) Save(_ context.Context, g *core.Graph) error {
	m.graph = g.Clone()
	m.saves++
	return nil
}

func transcript(t *testing.T, store shell.Store, opts []shell.Option, lines ...string) (string, *shell.Shell) {
	t.Helper()
	var out bytes.Buffer
	sh := shell.New(store, &out, opts...)
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, sh.Run(context.Background(), in))

	return out.String(), sh
}

func TestShell_Session(t *testing.T) {
	out, sh := transcript(t, nil, nil,
		"add Paris Lyon 5",
		"add Paris Marseille 10",
		"add Lyon Marseille 3",
		"show",
		"path Paris Marseille",
		"path Paris Atlantis",
		"stats",
		"quit",
		"add Never Reached 1",
	)

	want := "> Edge added successfully!\n" +
		"> Edge added successfully!\n" +
		"> Edge added successfully!\n" +
		"> Paris -> Lyon (5 km), Marseille (10 km)\n" +
		"Lyon -> Paris (5 km), Marseille (3 km)\n" +
		"Marseille -> Paris (10 km), Lyon (3 km)\n" +
		"> Shortest path: Paris -> Lyon -> Marseille\n" +
		"Total distance: 8 km\n" +
		"> Path not found!\n" +
		"> cities: 3, edges: 3, total distance: 18 km, max degree: 2\n" +
		"> "
	require.Equal(t, want, out)
	require.False(t, sh.Graph().HasCity("Never"))
}

func TestShell_ErrorsKeepGoing(t *testing.T) {
	out, sh := transcript(t, nil, nil,
		"add Paris Lyon 5",
		"add Paris Paris 1",
		"add Paris Lyon -3",
		"add Paris Lyon far",
		"add Paris",
		`path "Paris`,
		"fly Paris Lyon",
		"",
		"cities",
	)

	require.Equal(t, 5, strings.Count(out, "error: "), out)
	require.Contains(t, out, "endpoints must be distinct")
	require.Contains(t, out, "usage: add <city1> <city2> <km>")
	require.Contains(t, out, "unterminated quote")
	require.Contains(t, out, `unknown command "fly"`)
	require.True(t, strings.HasSuffix(out, "> Lyon\nParis\n> \n"), out)
	require.Equal(t, 1, sh.Graph().EdgeCount())
}

func TestShell_QuotedNames(t *testing.T) {
	out, sh := transcript(t, nil, nil,
		`add "New York" Boston 306`,
		`add Boston "Washington D.C." 440.5`,
		`path "New York" "Washington D.C."`,
	)

	require.Contains(t, out, "Shortest path: New York -> Boston -> Washington D.C.\nTotal distance: 746.5 km\n")
	require.True(t, sh.Graph().HasCity("New York"))
}

func TestShell_SaveAndLoadFiles(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	badPath := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(badPath, []byte("city1,city2,distance_between\nA,B,x\n"), 0o644))

	out, _ := transcript(t, nil, nil,
		"add A B 1.5",
		"add B C 2",
		"save "+csvPath,
	)
	require.Contains(t, out, "Graph saved to "+csvPath)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	require.Equal(t, "city1,city2,distance_between\nA,B,1.5\nB,C,2\n", string(data))

	out, sh := transcript(t, nil, nil,
		"load "+csvPath,
		"add C D 1",
		"load "+badPath,
		"components",
	)
	require.Contains(t, out, "loaded successfully! (3 cities, 2 edges)")
	require.Contains(t, out, "error: graphio: malformed input at line 2")
	require.Contains(t, out, "1: A, B, C, D\n")
	require.Equal(t, 3, sh.Graph().EdgeCount(), "failed load keeps the current graph")
}

func TestShell_Store(t *testing.T) {
	base := core.NewGraph()
	require.NoError(t, base.AddEdge("Oslo", "Bergen", 460))
	store := &memStore{graph: base}

	out, sh := transcript(t, store, []shell.Option{shell.WithGraph(base.Clone())},
		"add Bergen Stavanger 210",
		"save",
		"load",
	)
	require.Contains(t, out, "Graph saved to repository")
	require.Equal(t, 1, store.saves)
	require.True(t, store.graph.HasCity("Stavanger"))
	require.Equal(t, 2, sh.Graph().EdgeCount())

	out, _ = transcript(t, nil, nil, "load")
	require.Contains(t, out, "error: shell: usage: load <path>")
}

func TestShell_MST(t *testing.T) {
	out, _ := transcript(t, nil, nil,
		"add Paris Lyon 5",
		"add Paris Marseille 10",
		"add Lyon Marseille 3",
		"mst",
		"mst Paris",
		"add Oslo Bergen 460",
		"mst",
	)

	require.Contains(t, out, "Roads kept: Lyon - Marseille (3 km), Paris - Lyon (5 km)\nTotal distance: 8 km\n")
	require.Contains(t, out, "Roads kept: Paris - Lyon (5 km), Lyon - Marseille (3 km)\nTotal distance: 8 km\n")
	require.Contains(t, out, "error: prim_kruskal: graph is disconnected")
}

func TestShell_Help(t *testing.T) {
	out, _ := transcript(t, nil, nil, "help")
	for _, cmd := range []string{"load", "show", "cities", "path", "add", "save", "components", "stats", "mst", "quit"} {
		require.Contains(t, out, "  "+cmd)
	}
}

func TestShell_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	sh := shell.New(nil, &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, sh.Run(ctx, strings.NewReader("add A B 1\n")), context.Canceled)
	require.Zero(t, sh.Graph().EdgeCount())
}
