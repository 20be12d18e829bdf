package graphio

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/citygraph/core"
)

// snapshotVersion is bumped whenever the record layout changes.
const snapshotVersion = 1

// snapshot is the msgpack document stored inside the zstd frame.
type snapshot struct {
	Version       int         `msgpack:"v"`
	MergeParallel bool        `msgpack:"m"`
	Edges         []core.Edge `msgpack:"e"`
}

// snapshotCodec stores the same undirected edge list as the CSV table,
// msgpack-encoded and zstd-compressed.
type snapshotCodec struct{}

// Snapshot is the compact binary codec, selected by the SnapshotExt extension.
var Snapshot Codec = snapshotCodec{}

func (snapshotCodec) Name() string { return "snapshot" }

func (snapshotCodec) Encode(w io.Writer, g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("snapshot: zstd writer: %w", err)
	}
	doc := snapshot{Version: snapshotVersion, MergeParallel: g.MergeParallel(), Edges: g.Edges()}
	if err = msgpack.NewEncoder(zw).Encode(&doc); err != nil {
		_ = zw.Close()
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	return zw.Close()
}

// Decode rebuilds a Graph from a snapshot. A snapshot written with
// merging enabled restores with merging enabled, whatever opts say.
func (snapshotCodec) Decode(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, malformed(0, "", "not a zstd stream", err)
	}
	defer zr.Close()

	var doc snapshot
	if err = msgpack.NewDecoder(zr).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, malformed(0, "", "empty snapshot", nil)
		}
		return nil, malformed(0, "", "undecodable snapshot", err)
	}
	if doc.Version != snapshotVersion {
		return nil, malformed(0, "", fmt.Sprintf("unsupported snapshot version %d", doc.Version), nil)
	}

	if doc.MergeParallel {
		opts = append(opts, core.WithMergeParallel())
	}
	g := core.NewGraph(opts...)
	for i, e := range doc.Edges {
		if err = RestoreRow(g, i+1, e.City1, e.City2, e.Distance); err != nil {
			return nil, err
		}
	}

	return g, nil
}
