package connect

import "fmt"

// OutsideID is the id of the virtual exterior node. Snapshot entities
// must not claim it.
const OutsideID = "outside"

// LandingID returns the node id of a shaft landing on the given floor.
// Landing ids live in the same namespace as room ids, so snapshot ids
// containing "#" may collide with them; Build rejects such collisions.
func LandingID(shaftID string, floor int) string {
	return fmt.Sprintf("%s#%d", shaftID, floor)
}

// NodeKind classifies a graph node.
type NodeKind uint8

const (
	// NodeRoom is a room on some floor.
	NodeRoom NodeKind = iota
	// NodeLanding is the per-floor stop of a vertical shaft.
	NodeLanding
	// NodeOutside is the single virtual exterior node.
	NodeOutside
)

// String implements fmt.Stringer for NodeKind.
func (k NodeKind) String() string {
	switch k {
	case NodeRoom:
		return "room"
	case NodeLanding:
		return "landing"
	case NodeOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// Edge is one directed half of an undirected connection.
type Edge struct {
	// To is the id of the adjacent node.
	To string
	// Weight is the traversal cost in millimeters.
	Weight int64
	// Via is the id of the opening or shaft that carries the edge.
	Via string
	// Vertical is true for landing-to-landing shaft edges.
	Vertical bool
}

// Graph is the undirected weighted connectivity view of one building
// snapshot. It is immutable after Build returns: queries never modify
// it and it is safe for concurrent use.
type Graph struct {
	nodes []string          // insertion order, drives deterministic iteration
	kind  map[string]NodeKind
	adj   map[string][]Edge // both directions of every undirected edge
	edges int               // undirected edge count
}

func newGraph() *Graph {
	return &Graph{
		kind: make(map[string]NodeKind),
		adj:  make(map[string][]Edge),
	}
}

// addNode registers id with the given kind. Duplicate or reserved ids
// are construction errors, surfaced by Build.
func (g *Graph) addNode(id string, kind NodeKind) error {
	if _, ok := g.kind[id]; ok {
		return fmt.Errorf("%w: %q", ErrReservedID, id)
	}
	g.nodes = append(g.nodes, id)
	g.kind[id] = kind
	g.adj[id] = nil
	return nil
}

// addEdge inserts both directed halves of an undirected edge. Callers
// guarantee that u and v exist.
func (g *Graph) addEdge(u, v string, weight int64, via string, vertical bool) {
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: weight, Via: via, Vertical: vertical})
	g.adj[v] = append(g.adj[v], Edge{To: u, Weight: weight, Via: via, Vertical: vertical})
	g.edges++
}

// Nodes returns all node ids in insertion order. The slice is a copy.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.kind[id]
	return ok
}

// Kind returns the classification of id. The second result is false
// when id is not a node.
func (g *Graph) Kind(id string) (NodeKind, bool) {
	k, ok := g.kind[id]
	return k, ok
}

// Neighbors returns the edges leaving id in insertion order. The
// returned slice is shared with the graph and must not be mutated.
func (g *Graph) Neighbors(id string) []Edge {
	return g.adj[id]
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) int {
	return len(g.adj[id])
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges. Parallel door
// edges between the same pair count separately.
func (g *Graph) EdgeCount() int {
	return g.edges
}
