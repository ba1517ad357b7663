package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlplan/connect"
	"github.com/katalvlaran/lvlplan/model"
	"github.com/katalvlaran/lvlplan/render"
	"github.com/katalvlaran/lvlplan/snapshot"
)

var graphCmd = &cobra.Command{
	Use:   "graph <project>",
	Short: "Export the room connectivity graph as mermaid",
	Long: `Builds the door-and-shaft connectivity graph of a snapshot and writes
it as a mermaid flowchart, ready for any markdown renderer.`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	b, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}
	idx, err := model.NewIndex(b)
	if err != nil {
		return err
	}
	g, err := connect.Build(b)
	if err != nil {
		return err
	}
	return render.Mermaid(os.Stdout, g, idx)
}
