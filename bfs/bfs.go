package bfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/citygraph/core"
)

// queueItem pairs a city with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartNotFound, ErrOptionViolation, or the
// context error if cancelled.
func BFS(g Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasCity(start) {
		return nil, ErrStartNotFound
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool),
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		// parallel entries repeat a neighbor; visited filters them
		for _, n := range w.graph.Neighbors(item.id) {
			if !w.visited[n.City] {
				w.enqueue(n.City, next, item.id)
			}
		}
	}

	return nil
}

// Components returns the connected components of g. Each component is
// sorted; components are ordered by their smallest city.
func Components(g Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool)
	var out [][]string
	// Cities() is sorted, so each component is discovered from its smallest city.
	for _, c := range g.Cities() {
		if seen[c] {
			continue
		}
		res, err := BFS(g, c)
		if err != nil {
			return nil, err
		}
		comp := make([]string, len(res.Order))
		copy(comp, res.Order)
		sort.Strings(comp)
		for _, id := range comp {
			seen[id] = true
		}
		out = append(out, comp)
	}

	return out, nil
}
