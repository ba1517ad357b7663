// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlplan/connect"
	"github.com/katalvlaran/lvlplan/metrics"
	"github.com/katalvlaran/lvlplan/model"
	"github.com/katalvlaran/lvlplan/rules"
)

// Sentinel errors of the orchestrator.
var (
	// ErrNilBuilding is returned when Validate receives a nil snapshot.
	ErrNilBuilding = errors.New("validate: building is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("validate: invalid option supplied")
)

// Option configures a validation run via functional arguments. An
// invalid Option is recorded internally and surfaced as
// ErrOptionViolation by the Validate call that consumed it.
type Option func(*Options)

// Options holds the tunable parameters of one Validate call.
type Options struct {
	// Parallel is the number of rules checked concurrently. 1 runs the
	// catalog sequentially.
	Parallel int

	// Rules is the rule set to run. Its order is part of the report
	// contract: issues tied on severity sort by producing rule.
	Rules []rules.Rule

	// options forwarded to connect.Build
	graph []connect.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the full catalog, sequential
// execution and the default travel penalties.
func DefaultOptions() Options {
	return Options{
		Parallel: 1,
		Rules:    rules.Catalog(),
	}
}

// WithParallel checks up to n rules concurrently. Values below 1 are
// invalid.
func WithParallel(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: parallelism must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallel = n
	}
}

// WithRules replaces the rule catalog, for consumers that run a subset
// and for tests.
func WithRules(rs []rules.Rule) Option {
	return func(o *Options) {
		if len(rs) == 0 {
			o.err = fmt.Errorf("%w: empty rule set", ErrOptionViolation)
			return
		}
		o.Rules = rs
	}
}

// WithStairPenalty sets the per-floor stair travel weight, in meters,
// of the connectivity graph underneath the rules.
func WithStairPenalty(m float64) Option {
	return func(o *Options) {
		o.graph = append(o.graph, connect.WithStairPenalty(m))
	}
}

// WithElevatorPenalty sets the per-floor elevator travel weight, in
// meters.
func WithElevatorPenalty(m float64) Option {
	return func(o *Options) {
		o.graph = append(o.graph, connect.WithElevatorPenalty(m))
	}
}

// Validate runs the rule catalog over one snapshot and returns the
// ordered report.
//
// The pipeline: integrity index, connectivity graph, derived metrics,
// rules, merge. Integrity violations are fatal and surface as a
// *model.IntegrityError; rule findings are data and never an error.
// The snapshot is read, never written, so one building may be
// validated from several goroutines at once.
func Validate(b *model.Building, opts ...Option) (*rules.Report, error) {
	if b == nil {
		return nil, ErrNilBuilding
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	idx, err := model.NewIndex(b)
	if err != nil {
		return nil, err
	}
	g, err := connect.Build(b, o.graph...)
	if err != nil {
		return nil, err
	}
	in := &rules.Input{
		Building: b,
		Index:    idx,
		Graph:    g,
		Metrics:  metrics.Compute(b, idx),
	}

	// Each rule writes its own slot, so collection order is catalog
	// order no matter which goroutine finishes first.
	perRule := make([][]rules.Issue, len(o.Rules))
	if o.Parallel > 1 {
		var eg errgroup.Group
		eg.SetLimit(o.Parallel)
		for i := range o.Rules {
			i := i
			eg.Go(func() error {
				perRule[i] = o.Rules[i].Check(in)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range o.Rules {
			perRule[i] = o.Rules[i].Check(in)
		}
	}

	return rules.NewReport(merge(perRule)), nil
}

// merge flattens the per-rule findings into one ordered issue list.
// Exact duplicates (same code, same entity set) collapse onto the
// earliest rule's instance; the remainder sorts by severity, producing
// rule, primary entity and code. The sort is stable, so issues tied on
// all four keys keep their authoring order.
func merge(perRule [][]rules.Issue) []rules.Issue {
	type tagged struct {
		issue rules.Issue
		rule  int
	}
	var flat []tagged
	seen := make(map[string]bool)
	for i, found := range perRule {
		for _, is := range found {
			k := dedupKey(is)
			if seen[k] {
				continue
			}
			seen[k] = true
			flat = append(flat, tagged{issue: is, rule: i})
		}
	}

	sort.SliceStable(flat, func(a, b int) bool {
		x, y := flat[a], flat[b]
		if x.issue.Severity != y.issue.Severity {
			return x.issue.Severity < y.issue.Severity
		}
		if x.rule != y.rule {
			return x.rule < y.rule
		}
		if px, py := primary(x.issue), primary(y.issue); px != py {
			return px < py
		}
		return x.issue.Code < y.issue.Code
	})

	out := make([]rules.Issue, len(flat))
	for i := range flat {
		out[i] = flat[i].issue
	}
	return out
}

// dedupKey is the code plus the sorted entity set, NUL separated.
func dedupKey(is rules.Issue) string {
	ids := append([]string(nil), is.Entities...)
	sort.Strings(ids)
	return is.Code + "\x00" + strings.Join(ids, "\x00")
}

// primary returns the leading entity id, the subject of the finding.
func primary(is rules.Issue) string {
	if len(is.Entities) == 0 {
		return ""
	}
	return is.Entities[0]
}
