package connect

import "fmt"

// hopItem pairs a node id with its hop count from the start.
type hopItem struct {
	id   string
	hops int
}

// walker encapsulates mutable breadth-first state.
type walker struct {
	graph   *Graph
	opts    Options
	queue   []hopItem
	visited map[string]bool
	order   []string
}

// ReachableFrom returns every node reachable from startID, in visit
// order: breadth first, neighbors in edge insertion order, so the
// result is identical across runs. The start node is always first.
//
// WithFilterEdge restricts which edges may be crossed; WithMaxHops
// bounds the exploration depth.
//
// Complexity: O(V + E) time, O(V) space.
func ReachableFrom(g *Graph, startID string, opts ...Option) ([]string, error) {
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

	// 2) Prepare walker state.
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]hopItem, 0, n),
		visited: make(map[string]bool, n),
		order:   make([]string, 0, n),
	}

	// 3) Seed with the start node and run the loop.
	w.enqueue(startID, 0)
	w.loop()
	return w.order, nil
}

// enqueue marks id visited at the given hop count and queues it.
func (w *walker) enqueue(id string, hops int) {
	w.visited[id] = true
	w.queue = append(w.queue, hopItem{id: id, hops: hops})
}

// loop processes the queue until it drains.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.dequeue()
		w.order = append(w.order, item.id)
		w.enqueueNeighbors(item)
	}
}

// dequeue pops the oldest queued item.
func (w *walker) dequeue() hopItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// enqueueNeighbors applies the edge filter and the hop limit, then
// queues every unseen neighbor of item.
func (w *walker) enqueueNeighbors(item hopItem) {
	next := item.hops + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return
	}
	for _, e := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterEdge(item.id, e) {
			continue
		}
		if !w.visited[e.To] {
			w.enqueue(e.To, next)
		}
	}
}
