package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlplan/render"
	"github.com/katalvlaran/lvlplan/snapshot"
)

var (
	renderFloor  int
	renderOut    string
	renderScale  float64
	renderLabels bool
)

var renderCmd = &cobra.Command{
	Use:   "render <project>",
	Short: "Render one floor of a snapshot as SVG",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().IntVarP(&renderFloor, "floor", "f", 0, "floor index to render")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output path (default stdout)")
	renderCmd.Flags().Float64Var(&renderScale, "scale", render.DefaultScale, "pixels per meter")
	renderCmd.Flags().BoolVar(&renderLabels, "labels", true, "draw room labels")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	b, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}

	out := os.Stdout
	if renderOut != "" && renderOut != "-" {
		f, err := os.Create(renderOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return render.SVG(out, b, renderFloor,
		render.WithScale(renderScale), render.WithLabels(renderLabels))
}
