package connect

import (
	"container/heap"
	"fmt"
)

// Distances computes the shortest weighted distance in millimeters
// from startID to every node of g. Nodes no path reaches report
// Unreachable.
//
// Edge weights are non-negative by construction (centroid distances
// and positive shaft penalties), so a plain Dijkstra with a lazy
// decrease-key heap applies: improved distances push duplicate heap
// entries and stale entries are skipped on pop.
//
// WithFilterEdge restricts which edges may be crossed; WithMaxDistance
// stops exploration beyond a radius, leaving farther nodes at
// Unreachable.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances(g *Graph, startID string, opts ...Option) (map[string]int64, error) {
	// 1) Validate inputs and fold options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, startID)
	}

	// 2) Prepare runner state.
	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: o,
		start:   startID,
		dist:    make(map[string]int64, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 3) Initialize and run the main loop.
	r.init()
	r.process()
	return r.dist, nil
}

// ShortestDistance returns the shortest weighted distance from startID
// to destID in millimeters, or Unreachable when no path exists.
func ShortestDistance(g *Graph, startID, destID string, opts ...Option) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasNode(destID) {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, destID)
	}
	dist, err := Distances(g, startID, opts...)
	if err != nil {
		return 0, err
	}
	return dist[destID], nil
}

// runner holds the mutable state of one Distances execution.
type runner struct {
	g       *Graph
	options Options
	start   string
	dist    map[string]int64
	visited map[string]bool
	pq      nodePQ
}

// init seeds every node at Unreachable, the start at zero, and pushes
// the start onto the heap.
func (r *runner) init() {
	for _, id := range r.g.nodes {
		r.dist[id] = Unreachable
	}
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.start, dist: 0})
}

// process extracts the nearest unfinalized node and relaxes its edges
// until the heap drains or the distance limit is crossed.
func (r *runner) process() {
	limit := r.options.MaxDistanceMM
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry left behind by a later improvement
		}
		if limit > 0 && item.dist > limit {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax attempts to improve the distance of every neighbor of u.
func (r *runner) relax(u string) {
	limit := r.options.MaxDistanceMM
	for _, e := range r.g.Neighbors(u) {
		if !r.options.FilterEdge(u, e) {
			continue
		}
		next := r.dist[u] + e.Weight
		if limit > 0 && next > limit {
			continue
		}
		if next >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = next
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: next})
	}
}

// nodeItem is one heap entry: a node and a candidate distance.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
