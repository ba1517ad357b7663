// Package lvlplan is your in-memory toolkit for modeling, validating,
// and repairing multi-storey building plans: from planar geometry
// primitives to a 27-rule compliance catalog and an LLM repair loop.
//
// 🚀 What is lvlplan?
//
//	A building-model validation engine that brings together:
//		• Snapshot model: walls, rooms, slabs, shafts and openings on a shared millimeter grid
//		• Geometry: exact planar predicates, polygon areas, wall-axis math
//		• Connectivity: doors and shafts lifted into a weighted graph with a virtual outside node
//		• Rule catalog: structural, spatial, quality and circulation checks with three severities
//		• Mutations: copy-on-write edit ops that keep every snapshot immutable
//		• Rendering: SVG floor plans and Mermaid graph views
//		• Generation: parametric slab towers with optional planted defects
//
// ✨ Why choose lvlplan?
//
//   - Deterministic: identical snapshots yield identical reports, byte for byte
//   - Honest findings: every issue carries the entities, the measured value and the limit
//   - Concurrent: rule evaluation fans out across cores without changing the output order
//   - Scriptable: one JSON/YAML snapshot format shared by the CLI, the HTTP API and the library
//
// Under the hood, everything is organized under focused subpackages:
//
//	geom/      planar primitives on the millimeter grid
//	model/     snapshot types, integrity checks and the entity index
//	connect/   connectivity graph: build, reach, distances, cut vertices
//	metrics/   derived areas, ratios and per-apartment rollups
//	rules/     the issue catalog and every check in it
//	validate/  one-call pipeline gluing index, graph, metrics and rules
//	snapshot/  JSON and YAML load/save
//	mutate/    edit operations applied to fresh copies
//	render/    SVG floor plans, Mermaid connectivity views
//	agent/     LLM-backed repair suggestions
//	gen/       parametric building generator for tests and demos
//
// Quick ASCII example:
//
//	  ┌────┬────┐
//	  │ A1 │ A2 │
//	  ├────┴────┤    a double-loaded slab: apartments along a spine
//	  │corridor │    corridor, stair core at the end, street door
//	  └───[door]┘    on the gable wall.
//
// Dive into README.md and examples/ for full walkthroughs, and
// cmd/lvlplan for the command line interface.
//
//	go get github.com/katalvlaran/lvlplan
package lvlplan
