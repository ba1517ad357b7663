package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlplan/snapshot"
	"github.com/katalvlaran/lvlplan/validate"
)

var (
	validateJSON     bool
	validateParallel int
)

var validateCmd = &cobra.Command{
	Use:   "validate <project>",
	Short: "Run the rule catalog over a snapshot",
	Long: `Loads a snapshot, runs every rule and prints the findings, severest
first. Exits 1 when the building carries at least one error, 2 when the
snapshot cannot be loaded or fails the integrity check.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"print the report as JSON")
	validateCmd.Flags().IntVar(&validateParallel, "parallel", 0,
		"rule workers (0 = one per CPU)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	b, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}
	slog.Info("snapshot loaded", "project", b.Name, "path", args[0],
		"floors", len(b.Floors), "rooms", len(b.Rooms))

	var opts []validate.Option
	if validateParallel > 0 {
		opts = append(opts, validate.WithParallel(validateParallel))
	}
	rep, err := validate.Validate(b, opts...)
	if err != nil {
		return err
	}

	if validateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reportToJSON(rep)); err != nil {
			return err
		}
	} else {
		printReport(os.Stdout, rep)
	}

	if rep.HasErrors() {
		exitCode = exitFindings
	}
	return nil
}
