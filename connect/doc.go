// Package connect derives the connectivity graph of one building
// snapshot and answers the traversal queries the rule catalog is built
// on: reachability, weighted travel distance, and cut-vertex analysis.
//
// Nodes are traversable spaces: one node per room, one landing node per
// floor a shaft spans, and a single virtual "outside" node. Edges come
// from door openings only; a door joins the spaces whose boundary rings
// its span lies on (within geom.Eps). Windows never connect anything.
// Consecutive landings of one shaft are joined by vertical edges with a
// fixed per-floor penalty.
//
// Weights are straight-line centroid distances in whole millimeters
// (int64), a deliberate simplification of walking distance that keeps
// shortest-path arithmetic exact. Per-floor penalties are configurable
// via options; distances never model furniture, door swing, or actual
// corridor routing.
//
// The Graph is immutable once Build returns, so any number of queries
// (or concurrent validations) may share it without locking. Node and
// adjacency order follow snapshot authoring order, which is what makes
// every traversal result deterministic.
package connect
