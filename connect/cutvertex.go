package connect

import "fmt"

// IsCutVertex reports whether removing id would split its connected
// component, leaving some currently connected nodes unable to reach
// each other.
//
// Implementation: compare the component size around id against a
// breadth-first sweep that refuses every edge touching id. Two sweeps,
// O(V + E) each.
func IsCutVertex(g *Graph, id string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasNode(id) {
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	// A node with at most one incident edge cannot separate anything.
	neighbors := g.Neighbors(id)
	if len(neighbors) <= 1 {
		return false, nil
	}

	base, err := ReachableFrom(g, id)
	if err != nil {
		return false, err
	}
	if len(base) <= 2 {
		return false, nil
	}

	sub, err := ReachableFrom(g, neighbors[0].To, withoutNode(id))
	if err != nil {
		return false, err
	}

	// The sweep without id must still cover the whole component minus
	// id itself; anything short of that means id was the only bridge.
	return len(sub) < len(base)-1, nil
}

// CutIsolates returns the room nodes that lose their connection to the
// outside node when id is removed, in the baseline reachability order.
// An empty result means removing id strands no room.
func CutIsolates(g *Graph, id string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	base, err := ReachableFrom(g, OutsideID)
	if err != nil {
		return nil, err
	}
	sub, err := ReachableFrom(g, OutsideID, withoutNode(id))
	if err != nil {
		return nil, err
	}

	still := make(map[string]bool, len(sub))
	for _, n := range sub {
		still[n] = true
	}

	var lost []string
	for _, n := range base {
		if n == id || still[n] {
			continue
		}
		if k, _ := g.Kind(n); k == NodeRoom {
			lost = append(lost, n)
		}
	}
	return lost, nil
}

// withoutNode filters out every edge that enters or leaves id, which
// is equivalent to deleting the node for traversal purposes.
func withoutNode(id string) Option {
	return WithFilterEdge(func(from string, e Edge) bool {
		return from != id && e.To != id
	})
}
