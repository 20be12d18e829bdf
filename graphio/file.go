package graphio

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/citygraph/core"
)

// DefaultOutput is where the interactive tool saves when no destination is given.
const DefaultOutput = "updated_cities_distances.csv"

// SnapshotExt selects the Snapshot codec; any other extension means CSV.
const SnapshotExt = ".cgs"

// Codec converts between a Graph and a byte stream.
type Codec interface {
	Name() string
	Encode(w io.Writer, g *core.Graph) error
	Decode(r io.Reader, opts ...core.GraphOption) (*core.Graph, error)
}

// CodecFor picks the codec for path by its extension.
func CodecFor(path string) Codec {
	if strings.EqualFold(filepath.Ext(path), SnapshotExt) {
		return Snapshot
	}

	return CSV
}

// Load reads the graph stored at path.
//
// A missing file is not an error: it yields an empty graph so that a first
// run can start from nothing. Bad content yields a *MalformedInputError;
// other open/read failures wrap ErrIO.
func Load(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return core.NewGraph(opts...), nil
	}
	if err != nil {
		return nil, ioFailure("open", path, err)
	}
	defer f.Close()

	return CodecFor(path).Decode(f, opts...)
}

// Save writes g to path, replacing any previous content atomically: the
// data goes to a temporary file in the same directory which is synced and
// then renamed over path. On failure the previous file is left in place and
// g is untouched. Errors wrap ErrIO.
func Save(path string, g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return ioFailure("create", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if err = CodecFor(path).Encode(tmp, g); err != nil {
		cleanup()
		return ioFailure("write", path, err)
	}
	if err = tmp.Sync(); err != nil {
		cleanup()
		return ioFailure("sync", path, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return ioFailure("close", path, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return ioFailure("chmod", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return ioFailure("rename", path, err)
	}

	return nil
}
