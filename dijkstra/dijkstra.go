// Package dijkstra implements shortest-path search between cities.
//
// The search is the zero-heuristic form of A*: a best-first expansion in
// order of tentative distance, which is exactly Dijkstra's algorithm.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per relaxation.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries whose key is larger than the recorded best.
//   - Equal keys pop in ascending city order, so results are reproducible.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/citygraph/core"
)

// FindPath computes a minimum-total-distance path from start to goal.
//
// Returns:
//
//   - Path with cities start..goal inclusive and the summed distance, or
//     NoPath() when either city is unknown or goal is unreachable.
//   - err: ErrNilGraph, ErrOptionViolation, or ErrNegativeWeight.
//
// start == goal for a known city yields a single-city path of distance 0.
func FindPath(g Graph, start, goal string, opts ...Option) (Path, error) {
	// 1) Build and validate Options; a nil graph fails here.
	cfg, err := buildOptions(g, opts)
	if err != nil {
		return NoPath(), err
	}

	// 2) Unknown endpoints are a normal negative result.
	if !g.HasCity(start) || !g.HasCity(goal) {
		return NoPath(), nil
	}

	// 3) Expand from start until goal is settled or the frontier empties.
	r := newRunner(g, cfg, start)
	reached, err := r.run(goal)
	if err != nil {
		return NoPath(), err
	}
	if !reached {
		return NoPath(), nil
	}

	// 4) Walk predecessor links back from goal.
	return Path{Cities: r.pathTo(goal), Distance: r.dist[goal]}, nil
}

// ShortestPaths computes distances from source to every city.
//
// Returns:
//
//   - dist: city → minimum distance (+Inf if unreachable).
//   - prev: city → predecessor on the shortest path ("" for source and unreachable cities).
//   - err:  ErrNilGraph, ErrOptionViolation, ErrCityNotFound, or ErrNegativeWeight.
func ShortestPaths(g Graph, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build and validate Options, then require a known source.
	cfg, err := buildOptions(g, opts)
	if err != nil {
		return nil, nil, err
	}
	if !g.HasCity(source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrCityNotFound, source)
	}

	// 2) Run to exhaustion; an empty goal never matches.
	r := newRunner(g, cfg, source)
	if _, err = r.run(""); err != nil {
		return nil, nil, err
	}

	// 3) Report every city, +Inf and "" for those never reached.
	dist := make(map[string]float64)
	prev := make(map[string]string)
	for _, c := range g.Cities() {
		dist[c] = math.Inf(1)
		prev[c] = ""
	}
	for c, d := range r.dist {
		dist[c] = d
	}
	for c, p := range r.prev {
		prev[c] = p
	}

	return dist, prev, nil
}

func buildOptions(g Graph, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrNilGraph
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return Options{}, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Options{}, cfg.err
	}

	return cfg, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       Graph
	options Options
	source  string
	dist    map[string]float64 // best-known distance; absent means +Inf
	prev    map[string]string  // predecessor links
	pq      nodePQ
}

func newRunner(g Graph, cfg Options, source string) *runner {
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    map[string]float64{source: 0},
		prev:    make(map[string]string),
		pq:      make(nodePQ, 0, 16),
	}
	// Distance to the source is zero; it is the only initial frontier entry.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// best returns the recorded distance of id, +Inf if none.
func (r *runner) best(id string) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// run expands the frontier until goal is popped (reached == true), the
// frontier empties, or the next key exceeds MaxDistance. An empty goal
// explores everything reachable.
func (r *runner) run(goal string) (bool, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the closest frontier entry; ties pop by city ID.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale entries superseded by a shorter distance.
		if item.dist > r.best(item.id) {
			continue
		}
		// 3) Every remaining key is at least this large.
		if item.dist > r.options.MaxDistance {
			break
		}
		// 4) The goal is final once popped.
		if goal != "" && item.id == goal {
			return true, nil
		}
		// 5) Relax outgoing roads.
		if err := r.relax(item.id); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax tries to improve the distance of each neighbor of u.
func (r *runner) relax(u string) error {
	du := r.dist[u]
	for _, n := range r.g.Neighbors(u) {
		w := n.Distance
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, u, n.City, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		cand := du + w
		if cand > r.options.MaxDistance {
			continue
		}
		// Strict “<” keeps zero-weight cycles from re-queuing forever.
		if cand >= r.best(n.City) {
			continue
		}

		r.dist[n.City] = cand
		r.prev[n.City] = u
		heap.Push(&r.pq, &nodeItem{id: n.City, dist: cand})
	}

	return nil
}

// pathTo follows predecessor links from id back to the source.
func (r *runner) pathTo(id string) []string {
	path := []string{id}
	for id != r.source {
		id = r.prev[id]
		path = append(path, id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a frontier entry: a city and its tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
