package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/citygraph/core"
)

// Column names of the persisted edge table, in write order.
const (
	FieldCity1    = "city1"
	FieldCity2    = "city2"
	FieldDistance = "distance_between"
)

// Header is the exact header row written by Write.
var Header = []string{FieldCity1, FieldCity2, FieldDistance}

// csvCodec reads and writes the comma-separated edge table.
type csvCodec struct{}

// CSV is the default tabular codec.
var CSV Codec = csvCodec{}

func (csvCodec) Name() string { return "csv" }

func (csvCodec) Encode(w io.Writer, g *core.Graph) error { return Write(w, g) }

func (csvCodec) Decode(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	return Read(r, opts...)
}

// Read parses an edge table and returns a new Graph.
//
// The header must name city1, city2 and distance_between; their column
// positions may vary and extra columns are ignored. Any bad row aborts the
// whole load with a *MalformedInputError; no partial graph is returned.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short rows are reported as missing fields below
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, malformed(1, "", "missing header", nil)
	}
	if err != nil {
		return nil, csvError(err)
	}
	cols, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph(opts...)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)
		if err = addRow(g, line, rec, cols); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// columns holds the record index of each required field.
type columns struct{ city1, city2, distance int }

func headerIndex(header []string) (columns, error) {
	idx := map[string]int{}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	var cols columns
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{FieldCity1, &cols.city1},
		{FieldCity2, &cols.city2},
		{FieldDistance, &cols.distance},
	} {
		i, ok := idx[f.name]
		if !ok {
			return columns{}, malformed(1, f.name, "header is missing a required field", nil)
		}
		*f.dst = i
	}

	return cols, nil
}

func addRow(g *core.Graph, line int, rec []string, cols columns) error {
	field := func(i int) string {
		if i < len(rec) {
			return rec[i]
		}
		return ""
	}
	a, b, raw := field(cols.city1), field(cols.city2), strings.TrimSpace(field(cols.distance))

	switch {
	case a == "":
		return malformed(line, FieldCity1, "missing value", nil)
	case b == "":
		return malformed(line, FieldCity2, "missing value", nil)
	case raw == "":
		return malformed(line, FieldDistance, "missing value", nil)
	}

	d, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return malformed(line, FieldDistance, fmt.Sprintf("%q is not a number", raw), err)
	}

	return RestoreRow(g, line, a, b, d)
}

// RestoreRow inserts one persisted row into g, turning a rejected edge into
// a *MalformedInputError for line. Database backends share it with Read.
func RestoreRow(g *core.Graph, line int, a, b string, d float64) error {
	err := g.RestoreEdge(a, b, d)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrEmptyCity) && a == "":
		return malformed(line, FieldCity1, "missing value", err)
	case errors.Is(err, core.ErrEmptyCity) || errors.Is(err, core.ErrSelfLoop):
		return malformed(line, FieldCity2, "rejected edge", err)
	default:
		return malformed(line, FieldDistance, "rejected edge", err)
	}
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return malformed(pe.StartLine, "", "unreadable row", pe.Err)
	}

	return fmt.Errorf("%w: read: %w", ErrIO, err)
}

// Write emits the header followed by one row per undirected edge, in the
// order of g.Edges().
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	row := make([]string, 3)
	for _, e := range g.Edges() {
		row[0], row[1] = e.City1, e.City2
		row[2] = strconv.FormatFloat(e.Distance, 'f', -1, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
