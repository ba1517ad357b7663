// SPDX-License-Identifier: MIT

package rules

// Report is the ordered outcome of one validation run: every issue the
// catalog produced, deduplicated and sorted, plus counts per severity.
type Report struct {
	Issues        []Issue
	Errors        int
	Warnings      int
	Optimizations int
}

// NewReport wraps an already-ordered issue list with its severity
// counts.
func NewReport(issues []Issue) *Report {
	r := &Report{Issues: issues}
	for i := range issues {
		switch issues[i].Severity {
		case SeverityError:
			r.Errors++
		case SeverityWarning:
			r.Warnings++
		case SeverityOptimization:
			r.Optimizations++
		}
	}
	return r
}

// HasErrors reports whether any error-severity issue is present. The
// export gate and the CLI exit code key off this.
func (r *Report) HasErrors() bool {
	return r.Errors > 0
}

// ByCode returns the issues carrying the given code, in report order.
func (r *Report) ByCode(code string) []Issue {
	var out []Issue
	for i := range r.Issues {
		if r.Issues[i].Code == code {
			out = append(out, r.Issues[i])
		}
	}
	return out
}
