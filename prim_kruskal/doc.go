// Package prim_kruskal computes the Minimum Spanning Tree (MST) of a road
// graph: the cheapest set of roads that still connects every city.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (Tree, error)
//
//   - Strategy: stable-sort all roads by distance, then add each one whose
//     endpoints are still in different components (union-find).
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, root string) (Tree, error)
//
//   - Strategy: grow one tree from root, always taking the shortest road
//     that reaches a new city (min-heap).
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Compute(g, opts...) dispatches on WithMethod / WithRoot.
//
// Both algorithms return the same Total on a connected graph; the edge sets
// may differ when distances tie. Parallel roads are fine: only the shortest
// copy can be chosen.
//
// Error Conditions
//
//   - core.ErrNilGraph: graph is nil.
//   - ErrEmptyGraph: the graph has no cities.
//   - ErrEmptyRoot: Prim called with root == "".
//   - ErrCityNotFound: Prim root is not a known city.
//   - ErrDisconnected: some city cannot be reached; no spanning tree exists.
//
// Determinism
//
//   - Kruskal's stable sort keeps core.Graph.Edges order for equal distances.
//   - Prim breaks equal distances by push order.
package prim_kruskal
