package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlplan/connect"
	"github.com/katalvlaran/lvlplan/model"
)

// Mermaid writes the connectivity graph as a Mermaid flowchart.
//
// Node shapes follow kind: rooms are rectangles, shaft landings
// hexagons, the outside node a circle. Room labels carry the type and
// floor area; edges carry the opening or shaft id and the travel
// distance in meters. Nodes and edges are emitted in graph insertion
// order, each undirected edge once, so one graph always renders to
// byte-identical text.
func Mermaid(w io.Writer, g *connect.Graph, idx *model.Index) error {
	if g == nil {
		return ErrNilGraph
	}
	if idx == nil {
		return ErrNilIndex
	}

	var sb strings.Builder
	if name := idx.Building().Name; name != "" {
		fmt.Fprintf(&sb, "%%%% connectivity: %s\n", name)
	} else {
		sb.WriteString("%% connectivity\n")
	}
	sb.WriteString("flowchart TD\n")

	for _, id := range g.Nodes() {
		kind, _ := g.Kind(id)
		switch kind {
		case connect.NodeOutside:
			fmt.Fprintf(&sb, "    %s((\"%s\"))\n", mermaidID(id), id)
		case connect.NodeLanding:
			fmt.Fprintf(&sb, "    %s{{\"%s\"}}\n", mermaidID(id), id)
		default:
			label := id
			if r, ok := idx.Room(id); ok {
				label = fmt.Sprintf("%s\\n%s %.1fm²", id, r.Type, r.Boundary.Area())
			}
			fmt.Fprintf(&sb, "    %s[\"%s\"]\n", mermaidID(id), label)
		}
	}
	sb.WriteString("\n")

	// Adjacency holds both directed halves of every connection; emit
	// each undirected edge on its first encounter. Parallel doors
	// between one pair differ in Via and are all kept.
	type edgeKey struct {
		lo, hi, via string
	}
	seen := make(map[edgeKey]bool)
	for _, from := range g.Nodes() {
		for _, e := range g.Neighbors(from) {
			k := edgeKey{lo: from, hi: e.To, via: e.Via}
			if k.hi < k.lo {
				k.lo, k.hi = k.hi, k.lo
			}
			if seen[k] {
				continue
			}
			seen[k] = true
			fmt.Fprintf(&sb, "    %s -->|\"%s %.1fm\"| %s\n",
				mermaidID(from), e.Via, connect.Meters(e.Weight), mermaidID(e.To))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// mermaidID turns a snapshot id into a Mermaid-safe node id. Distinct
// snapshot ids can collapse onto one node id; keep ids alphanumeric
// with dashes if that matters.
func mermaidID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, id)
}
