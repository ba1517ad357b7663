// SPDX-License-Identifier: MIT

// Package model defines the immutable building snapshot: floors, walls
// with their openings, slabs, rooms, apartments and shafts, aggregated
// under a single Building value.
//
// Ownership is a strict tree. The Building owns every entity slice;
// cross-entity relations are non-owning identifier references (an
// apartment lists its room ids, the building names its entrance door)
// resolved through an Index built once per snapshot. Entities carry no
// back-pointers, so a snapshot can be deep-copied or serialized without
// cycle bookkeeping.
//
// A snapshot is produced whole (by the snapshot codec, the generator, or
// a mutate.Apply round) and is never edited in place. Consumers treat
// every exported field as read-only; the validation engine relies on
// this to stay deterministic and lock-free.
//
// NewIndex is the single gate between "decodable" and "analyzable": it
// resolves all references and fails fast with an IntegrityError when a
// structural invariant is broken (duplicate id, dangling reference,
// non-contiguous floors). Geometric defects are deliberately NOT
// integrity failures; the rule catalog reports those as Issues.
package model
