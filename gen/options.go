// SPDX-License-Identifier: MIT

package gen

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("gen: invalid option supplied")

// DefectKind names one deliberate flaw the generator can plant. The
// zero value plants nothing.
type DefectKind uint8

const (
	// DefectNone builds the clean plan.
	DefectNone DefectKind = iota

	// DefectNarrowCorridor squeezes the main corridor below the code
	// minimum. The entrance door narrows with it.
	DefectNarrowCorridor

	// DefectIsolatedStorage omits the door of one storage room, leaving
	// it walled in. Forces at least two bedrooms, smaller plans carry
	// no storage.
	DefectIsolatedStorage

	// DefectMissingKitchen retypes one kitchen as storage, so its
	// apartment no longer cooks.
	DefectMissingKitchen

	// DefectTunnelBedroom squeezes one master bedroom into a 1.9 m
	// strip, well past the aspect limit and below the master minimum.
	DefectTunnelBedroom

	// DefectLowCeiling drops one facade wall to 2.3 m clear height.
	DefectLowCeiling

	// DefectUnsupportedWall marks one upper-storey partition as
	// load-bearing with nothing but a partition beneath it. Forces at
	// least two floors.
	DefectUnsupportedWall
)

var defectNames = map[DefectKind]string{
	DefectNone:            "none",
	DefectNarrowCorridor:  "narrow-corridor",
	DefectIsolatedStorage: "isolated-storage",
	DefectMissingKitchen:  "missing-kitchen",
	DefectTunnelBedroom:   "tunnel-bedroom",
	DefectLowCeiling:      "low-ceiling",
	DefectUnsupportedWall: "unsupported-wall",
}

// String returns the wire form of the kind.
func (k DefectKind) String() string {
	if s, ok := defectNames[k]; ok {
		return s
	}
	return fmt.Sprintf("defect(%d)", uint8(k))
}

// ParseDefectKind maps a wire string back to its DefectKind, for flag
// parsing.
func ParseDefectKind(s string) (DefectKind, error) {
	for k, name := range defectNames {
		if name == s {
			return k, nil
		}
	}
	return DefectNone, fmt.Errorf("%w: defect %q", ErrOptionViolation, s)
}

// Option configures a generator run via functional arguments. An
// invalid Option is recorded internally and surfaced as
// ErrOptionViolation by the Building call that consumed it.
type Option func(*Options)

// Options holds the tunable parameters of one generated building.
type Options struct {
	// Floors is the storey count, 1 to 6.
	Floors int

	// Apartments is the apartment count per storey, 1 to 4. The first
	// half lines the south side of the corridor, the rest the north.
	Apartments int

	// Bedrooms is the bedroom count per apartment, 1 to 3. Two and up
	// add a separate WC and storage, three adds a second bathroom.
	Bedrooms int

	// Elevator adds an elevator shaft behind the south staircase.
	Elevator bool

	// Defect is the flaw to plant, DefectNone for a clean build.
	Defect DefectKind

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the two-storey, two-apartment, one-bedroom
// plan: the smallest configuration that exercises stairs, mirrored
// rows and the whole rule catalog without earning a single error or
// warning.
func DefaultOptions() Options {
	return Options{Floors: 2, Apartments: 2, Bedrooms: 1}
}

// WithFloors sets the storey count.
func WithFloors(n int) Option {
	return func(o *Options) {
		if n < 1 || n > 6 {
			o.err = fmt.Errorf("%w: floors must be 1..6 (%d)", ErrOptionViolation, n)
			return
		}
		o.Floors = n
	}
}

// WithApartments sets the apartment count per storey.
func WithApartments(n int) Option {
	return func(o *Options) {
		if n < 1 || n > 4 {
			o.err = fmt.Errorf("%w: apartments must be 1..4 (%d)", ErrOptionViolation, n)
			return
		}
		o.Apartments = n
	}
}

// WithBedrooms sets the bedroom count per apartment.
func WithBedrooms(n int) Option {
	return func(o *Options) {
		if n < 1 || n > 3 {
			o.err = fmt.Errorf("%w: bedrooms must be 1..3 (%d)", ErrOptionViolation, n)
			return
		}
		o.Bedrooms = n
	}
}

// WithElevator adds the elevator shaft.
func WithElevator() Option {
	return func(o *Options) { o.Elevator = true }
}

// WithDefect plants one deliberate flaw. Some kinds raise other
// options to their stated minimum so the flawed element exists at all.
func WithDefect(k DefectKind) Option {
	return func(o *Options) {
		if _, ok := defectNames[k]; !ok {
			o.err = fmt.Errorf("%w: unknown defect %d", ErrOptionViolation, k)
			return
		}
		o.Defect = k
	}
}
