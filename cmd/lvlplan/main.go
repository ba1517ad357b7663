// Command lvlplan validates, renders and repairs building snapshots.
//
// Every subcommand exits 0 on success, 1 when the building carries
// error-severity findings, and 2 when the run itself failed: unreadable
// snapshot, integrity violation, bad flags.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const (
	exitOK       = 0
	exitFindings = 1
	exitFailure  = 2
)

// exitCode is raised by subcommands that finish their run but want a
// non-zero exit, such as validate on a failing building.
var exitCode = exitOK

var version = "dev" // overridden at build time via -ldflags

var (
	flagLogLevel string
	flagLogJSON  bool
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "lvlplan",
	Short: "Validate, render and repair multi-storey building snapshots",
	Long: `lvlplan loads building snapshots (JSON or YAML), runs a catalog of
structural, connectivity and quality rules over them, and reports every
finding by severity. It can also render floor plans to SVG, export the
room connectivity graph as mermaid, generate sample buildings, watch a
snapshot for edits, serve the engine over HTTP and ask a language model
to suggest fixes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupColor()
		return setupLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lvlplan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lvlplan", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn",
		"minimum log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false,
		"write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false,
		"disable styled output")
	rootCmd.AddCommand(versionCmd)
}

// setupLogging routes slog to stderr so command output on stdout stays
// machine-readable. Library packages never log; everything below the
// chosen level is dropped here.
func setupLogging() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(flagLogLevel)); err != nil {
		return fmt.Errorf("bad --log-level %q: %w", flagLogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if flagLogJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, paint(styleError, "error:")+" "+err.Error())
		os.Exit(exitFailure)
	}
	os.Exit(exitCode)
}
