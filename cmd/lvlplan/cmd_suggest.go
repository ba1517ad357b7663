package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlplan/agent"
	"github.com/katalvlaran/lvlplan/mutate"
	"github.com/katalvlaran/lvlplan/snapshot"
	"github.com/katalvlaran/lvlplan/validate"
)

var (
	suggestApply  bool
	suggestRounds int
	suggestModel  string
	suggestBase   string
	suggestOut    string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <project>",
	Short: "Ask a language model to fix the findings",
	Long: `Validates the snapshot and sends the element inventory plus findings
to a chat model, which answers with numeric corrections. Without
--apply the corrections are only printed. With --apply each round is
compiled to mutations, applied, and the result re-validated, until the
report is free of errors or the round budget runs out.

The API key is read from OPENAI_API_KEY; --base-url points the client
at any OpenAI-compatible endpoint, including a local one.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestApply, "apply", false,
		"apply corrections and re-validate")
	suggestCmd.Flags().IntVar(&suggestRounds, "rounds", 3,
		"correction rounds before giving up")
	suggestCmd.Flags().StringVar(&suggestModel, "model", "",
		"chat model (default "+agent.DefaultModel+")")
	suggestCmd.Flags().StringVar(&suggestBase, "base-url", "",
		"OpenAI-compatible endpoint")
	suggestCmd.Flags().StringVarP(&suggestOut, "out", "o", "",
		"write the repaired snapshot here (with --apply)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	var copts []agent.ClientOption
	if suggestModel != "" {
		copts = append(copts, agent.WithModel(suggestModel))
	}
	if suggestBase != "" {
		copts = append(copts, agent.WithBaseURL(suggestBase))
	}
	client := agent.NewOpenAIClient(key, copts...)

	b, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}

	rep, err := validate.Validate(b)
	if err != nil {
		return err
	}
	fmt.Println(summaryLine(rep))

	ctx := cmd.Context()
	for round := 1; round <= suggestRounds && rep.HasErrors(); round++ {
		corrs, err := client.Suggest(ctx, b, rep)
		if err != nil {
			return err
		}
		if len(corrs) == 0 {
			fmt.Println(paint(styleMuted, "model suggested nothing"))
			break
		}
		printCorrections(corrs)

		if !suggestApply {
			break
		}
		ops, err := agent.Ops(b, corrs)
		if err != nil {
			return err
		}
		next, err := mutate.Apply(b, ops...)
		if err != nil {
			// Apply never touches its input, so b and rep stay valid.
			slog.Warn("corrections rejected", "round", round, "error", err)
			break
		}
		b = next
		rep, err = validate.Validate(b)
		if err != nil {
			return err
		}
		fmt.Printf("after round %d: %s\n", round, summaryLine(rep))
	}

	if rep.HasErrors() {
		exitCode = exitFindings
	}
	if suggestApply && suggestOut != "" {
		if err := snapshot.Save(suggestOut, b); err != nil {
			return err
		}
		fmt.Println("wrote", suggestOut)
	}
	return nil
}

func printCorrections(corrs []agent.Correction) {
	for i, c := range corrs {
		head := c.Action
		if c.Kind != "" {
			head += " " + c.Kind
		}
		if c.Target != "" {
			head += " " + c.Target
		}
		fmt.Printf("%3d. %s\n", i+1, head)
		if c.Reason != "" {
			fmt.Printf("     %s\n", paint(styleMuted, c.Reason))
		}
	}
}
