package graphio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/graphio"
)

const franceCSV = `city1,city2,distance_between
Paris,Lyon,5
Lyon,Marseille,3
Paris,Marseille,10
`

// edgeSet returns the edges as sorted "a|b|w" keys with a<b, so that two
// graphs can be compared as undirected multisets.
func edgeSet(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		a, b := e.City1, e.City2
		if b < a {
			a, b = b, a
		}
		out = append(out, a+"|"+b+"|"+strconv.FormatFloat(e.Distance, 'g', -1, 64))
	}
	sort.Strings(out)

	return out
}

func TestRead_Basic(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(franceCSV))
	require.NoError(t, err)

	require.Equal(t, []string{"Lyon", "Marseille", "Paris"}, g.Cities())
	require.Equal(t, 3, g.EdgeCount())
	require.Contains(t, g.Neighbors("Marseille"), core.Neighbor{City: "Paris", Distance: 10})
}

func TestRead_ColumnOrderAndExtras(t *testing.T) {
	src := "note,distance_between,city2,city1\nx,2.5,B,A\n"
	g, err := graphio.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []core.Neighbor{{City: "B", Distance: 2.5}}, g.Neighbors("A"))
}

func TestRead_ZeroDistanceAccepted(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("city1,city2,distance_between\nA,B,0\n"))
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}

func TestRead_HeaderOnly(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("city1,city2,distance_between\n"))
	require.NoError(t, err)
	require.Zero(t, g.CityCount())
}

func TestRead_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		line  int
		field string
	}{
		{"empty input", "", 1, ""},
		{"missing header field", "city1,city2\nA,B\n", 1, graphio.FieldDistance},
		{"short row", "city1,city2,distance_between\nA,B,1\nC,D\n", 3, graphio.FieldDistance},
		{"missing city", "city1,city2,distance_between\n,B,1\n", 2, graphio.FieldCity1},
		{"non numeric", "city1,city2,distance_between\nA,B,far\n", 2, graphio.FieldDistance},
		{"negative", "city1,city2,distance_between\nA,B,-3\n", 2, graphio.FieldDistance},
		{"nan", "city1,city2,distance_between\nA,B,NaN\n", 2, graphio.FieldDistance},
		{"same city", "city1,city2,distance_between\nA,A,1\n", 2, graphio.FieldCity2},
		{"bad quoting", "city1,city2,distance_between\n\"A,B,1\n", 2, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graphio.Read(strings.NewReader(tc.src))
			require.Nil(t, g, "no partial graph")
			require.ErrorIs(t, err, graphio.ErrMalformedInput)

			var me *graphio.MalformedInputError
			require.True(t, errors.As(err, &me))
			require.Equal(t, tc.line, me.Line)
			require.Equal(t, tc.field, me.Field)
		})
	}
}

func TestWrite_OneRowPerUndirectedEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("Paris", "Lyon", 5))
	require.NoError(t, g.AddEdge("Lyon", "Marseille", 3.25))
	require.NoError(t, g.AddEdge("Lyon", "Paris", 5)) // parallel

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g))

	require.Equal(t, "city1,city2,distance_between\n"+
		"Paris,Lyon,5\n"+
		"Paris,Lyon,5\n"+
		"Lyon,Marseille,3.25\n", buf.String())
}

func TestWrite_QuotesCityNames(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("Washington, D.C.", "New York", 360))

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g))

	back, err := graphio.Read(&buf)
	require.NoError(t, err)
	require.True(t, back.HasCity("Washington, D.C."))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	g, err := graphio.Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	require.NotNil(t, g)
	require.Zero(t, g.CityCount())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"graph.csv", "graph.cgs"} {
		t.Run(name, func(t *testing.T) {
			g := core.NewGraph()
			require.NoError(t, g.AddEdge("Paris", "Lyon", 465.5))
			require.NoError(t, g.AddEdge("Lyon", "Marseille", 315))
			require.NoError(t, g.AddEdge("Paris", "Marseille", 775))
			require.NoError(t, g.AddEdge("Tokyo", "Osaka", 0.1))
			require.NoError(t, g.AddEdge("Lyon", "Paris", 470)) // parallel road
			require.Equal(t, 5, g.EdgeCount())

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, graphio.Save(path, g))

			back, err := graphio.Load(path)
			require.NoError(t, err)
			require.Equal(t, g.EdgeCount(), back.EdgeCount())
			require.Len(t, back.Neighbors("Paris"), 3)
			require.Equal(t, edgeSet(g), edgeSet(back))
			require.Equal(t, g.Edges(), back.Edges())
		})
	}
}

func TestSave_ReplacesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, graphio.DefaultOutput)
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, graphio.Save(path, g))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "city1,city2,distance_between\nA,B,1\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSave_UnwritableDestination(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	err := graphio.Save(filepath.Join(t.TempDir(), "no", "such", "dir.csv"), g)
	require.ErrorIs(t, err, graphio.ErrIO)
	require.Equal(t, 1, g.EdgeCount())
}

func TestSnapshot_KeepsMergeFlag(t *testing.T) {
	g := core.NewGraph(core.WithMergeParallel())
	require.NoError(t, g.AddEdge("A", "B", 3))

	var buf bytes.Buffer
	require.NoError(t, graphio.Snapshot.Encode(&buf, g))

	back, err := graphio.Snapshot.Decode(&buf)
	require.NoError(t, err)
	require.True(t, back.MergeParallel())
	require.NoError(t, back.AddEdge("A", "B", 1))
	require.Equal(t, 1, back.EdgeCount())
}

func TestSnapshot_Garbage(t *testing.T) {
	_, err := graphio.Snapshot.Decode(strings.NewReader("definitely not zstd"))
	require.ErrorIs(t, err, graphio.ErrMalformedInput)
}

func TestCodecFor(t *testing.T) {
	require.Equal(t, "snapshot", graphio.CodecFor("x/graph.CGS").Name())
	require.Equal(t, "csv", graphio.CodecFor("graph.csv").Name())
	require.Equal(t, "csv", graphio.CodecFor("graph").Name())
}
