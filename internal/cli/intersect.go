package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/chart"
	"github.com/katalvlaran/lvmesh/intersect"
)

var intersectCmd = &cobra.Command{
	Use:   "intersect <file> <cell> <cell>",
	Short: "Intersect two cells of a mesh and print the pieces",
	Args:  cobra.ExactArgs(3),
	RunE:  runIntersect,
}

func init() {
	rootCmd.AddCommand(intersectCmd)
}

func runIntersect(cmd *cobra.Command, args []string) error {
	m, err := readMesh(args[0])
	if err != nil {
		return err
	}
	var cs [2]chart.Chart
	for i, a := range args[1:] {
		idx, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("intersect: cell %q is not an integer", a)
		}
		if cs[i], err = chart.FromCell(m, idx); err != nil {
			return err
		}
	}

	pieces, err := intersect.Charts(cs[0], cs[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	total := 0.0
	for _, p := range pieces {
		parts := make([]string, 0, len(p.Vertices()))
		for _, v := range p.Vertices() {
			parts = append(parts, fmt.Sprintf("%.6g", []float64(v)))
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		total += p.Volume()
	}
	fmt.Fprintf(out, "pieces: %d measure: %.6g\n", len(pieces), total)
	return nil
}
