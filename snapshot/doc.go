// SPDX-License-Identifier: MIT

// Package snapshot reads and writes Building snapshots as JSON or
// YAML. The wire layer is a separate set of DTOs with snake_case
// fields and string enums, so the model structs can evolve without
// silently changing files on disk.
//
// Decoding maps enum strings through the model parsers and fails with
// an ErrBadSnapshot-wrapped error naming the offending field path. It
// does not run the integrity gate; that is validation's first step,
// and a freshly loaded snapshot may legitimately be broken in ways a
// codec has no opinion on.
package snapshot
