// Package render writes human-readable views of one building
// snapshot: a per-floor SVG plan and a Mermaid flowchart of the
// connectivity graph.
//
// The SVG writer draws in architectural plan convention: slabs as a
// light underlay, rooms filled by type, load-bearing walls heavier
// than partitions, doors and windows as colored ticks in a wall gap,
// shafts hatched. World coordinates are meters with Y up; the writer
// flips Y and scales to pixels, so the output needs no viewer-side
// transform.
//
// Both writers are pure string assembly over the snapshot and emit
// elements in authoring order, so one snapshot always renders to
// byte-identical output. Neither pulls in an imaging dependency;
// the SVG and Mermaid texts are the deliverables.
package render
