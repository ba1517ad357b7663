// Package connect: option plumbing and error definitions for graph
// construction and queries.
package connect

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNilBuilding is returned when Build receives a nil snapshot.
	ErrNilBuilding = errors.New("connect: building is nil")

	// ErrGraphNil is returned if a nil graph pointer is passed to a query.
	ErrGraphNil = errors.New("connect: graph is nil")

	// ErrNodeNotFound is returned when a query names an absent node.
	ErrNodeNotFound = errors.New("connect: node not found")

	// ErrReservedID is returned by Build when a snapshot entity claims an
	// id the graph reserves for itself (the outside node, landing ids).
	ErrReservedID = errors.New("connect: reserved node id")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("connect: invalid option supplied")
)

// Unreachable is the distance reported for nodes no path reaches.
const Unreachable int64 = math.MaxInt64

// Meters converts a millimeter distance into meters; Unreachable maps
// to +Inf, matching the "infinite if unreachable" query contract.
func Meters(mm int64) float64 {
	if mm == Unreachable {
		return math.Inf(1)
	}
	return float64(mm) / 1000
}

// Option configures graph construction and queries via functional
// arguments. An invalid Option is recorded internally and surfaced as
// ErrOptionViolation by the call that consumed it.
type Option func(*Options)

// Options holds the tunable parameters. Build reads the penalties;
// ReachableFrom reads FilterEdge and MaxHops; Distances reads
// FilterEdge and MaxDistance. Irrelevant fields are ignored by each
// consumer.
type Options struct {
	// StairPenaltyMM is the vertical edge weight between consecutive
	// staircase landings, in millimeters per floor.
	StairPenaltyMM int64

	// ElevatorPenaltyMM is the vertical edge weight between consecutive
	// elevator landings, in millimeters per floor.
	ElevatorPenaltyMM int64

	// FilterEdge can exclude edges from a traversal by returning false.
	// Called once per directed visit of e from the node from. The Edge
	// carries Via and Vertical, so callers can cut by opening, by shaft
	// or by direction of travel.
	FilterEdge func(from string, e Edge) bool

	// MaxHops, if > 0, stops breadth-first exploration beyond this hop
	// count. 0 disables the limit.
	MaxHops int

	// MaxDistanceMM, if > 0, stops shortest-path exploration beyond this
	// distance. 0 disables the limit.
	MaxDistanceMM int64

	// internal error recorded during option parsing
	err error
}

// Default per-floor penalties, in meters.
const (
	// DefaultStairPenalty approximates one storey of stair climbing.
	DefaultStairPenalty = 5.0

	// DefaultElevatorPenalty approximates one storey of elevator travel.
	DefaultElevatorPenalty = 5.0
)

// DefaultOptions returns Options with sane defaults: 5 m per floor on
// both shaft kinds, no edge filtering, no hop or distance limit.
func DefaultOptions() Options {
	return Options{
		StairPenaltyMM:    int64(DefaultStairPenalty * 1000),
		ElevatorPenaltyMM: int64(DefaultElevatorPenalty * 1000),
		FilterEdge:        func(string, Edge) bool { return true },
		MaxHops:           0,
		MaxDistanceMM:     0,
		err:               nil,
	}
}

// WithStairPenalty sets the per-floor stair weight, in meters.
// Non-positive values are invalid.
func WithStairPenalty(m float64) Option {
	return func(o *Options) {
		if m <= 0 {
			o.err = fmt.Errorf("%w: stair penalty must be positive (%v)", ErrOptionViolation, m)
			return
		}
		o.StairPenaltyMM = int64(math.Round(m * 1000))
	}
}

// WithElevatorPenalty sets the per-floor elevator weight, in meters.
// Non-positive values are invalid.
func WithElevatorPenalty(m float64) Option {
	return func(o *Options) {
		if m <= 0 {
			o.err = fmt.Errorf("%w: elevator penalty must be positive (%v)", ErrOptionViolation, m)
			return
		}
		o.ElevatorPenaltyMM = int64(math.Round(m * 1000))
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(from string, e Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithMaxHops limits breadth-first traversal depth.
//
//	n > 0:  explore at most n hops from the start
//	n == 0: explicit no limit
//	n < 0:  invalid option -> ErrOptionViolation
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithMaxDistance limits shortest-path exploration, in meters.
//
//	m > 0:  stop finalizing nodes beyond this distance
//	m == 0: explicit no limit
//	m < 0:  invalid option -> ErrOptionViolation
func WithMaxDistance(m float64) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%v)", ErrOptionViolation, m)
			return
		}
		o.MaxDistanceMM = int64(math.Round(m * 1000))
	}
}

// buildOptions folds opts over the defaults and reports the first
// violation recorded by a constructor.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
