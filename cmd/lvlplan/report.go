package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/lvlplan/rules"
)

// Severity colors are plain ANSI indices so they track the user's
// terminal theme instead of fighting it.
var (
	styleError    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleWarning  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleOptimize = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var colorEnabled bool

// setupColor decides once per run. Piped output gets plain text, as
// does --no-color.
func setupColor() {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	colorEnabled = tty && !flagNoColor
}

func paint(st lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return st.Render(s)
}

func severityStyle(s rules.Severity) lipgloss.Style {
	switch s {
	case rules.SeverityError:
		return styleError
	case rules.SeverityWarning:
		return styleWarning
	default:
		return styleOptimize
	}
}

// printReport writes the issue table and a one-line summary. Issues
// arrive pre-sorted from the orchestrator, severest first.
func printReport(w io.Writer, rep *rules.Report) {
	for _, is := range rep.Issues {
		tag := paint(severityStyle(is.Severity), fmt.Sprintf("%-12s", is.Severity))
		fmt.Fprintf(w, "%s  %s\n", tag, is.Message)
		if len(is.Entities) > 0 {
			fmt.Fprintf(w, "%s  %s\n", strings.Repeat(" ", 12),
				paint(styleMuted, strings.Join(is.Entities, ", ")))
		}
	}
	if len(rep.Issues) > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, summaryLine(rep))
}

func summaryLine(rep *rules.Report) string {
	return fmt.Sprintf("%s, %s, %s",
		paint(styleError, fmt.Sprintf("%d error(s)", rep.Errors)),
		paint(styleWarning, fmt.Sprintf("%d warning(s)", rep.Warnings)),
		paint(styleOptimize, fmt.Sprintf("%d optimization(s)", rep.Optimizations)))
}

// issueJSON and reportJSON are the wire shape of a report, shared by
// `validate --json` and the serve endpoint.
type issueJSON struct {
	Severity   string   `json:"severity"`
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Entities   []string `json:"entities,omitempty"`
	Actual     float64  `json:"actual,omitempty"`
	Limit      float64  `json:"limit,omitempty"`
	Confidence float64  `json:"confidence"`
}

type reportJSON struct {
	Errors        int         `json:"errors"`
	Warnings      int         `json:"warnings"`
	Optimizations int         `json:"optimizations"`
	Issues        []issueJSON `json:"issues"`
}

func reportToJSON(rep *rules.Report) reportJSON {
	out := reportJSON{
		Errors:        rep.Errors,
		Warnings:      rep.Warnings,
		Optimizations: rep.Optimizations,
		Issues:        make([]issueJSON, 0, len(rep.Issues)),
	}
	for _, is := range rep.Issues {
		out.Issues = append(out.Issues, issueJSON{
			Severity:   is.Severity.String(),
			Code:       is.Code,
			Message:    is.Message,
			Entities:   is.Entities,
			Actual:     is.Actual,
			Limit:      is.Limit,
			Confidence: is.Confidence,
		})
	}
	return out
}
