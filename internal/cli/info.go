package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/chart"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/topology"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print counts, Euler characteristic and orientation of a mesh",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, err := readMesh(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, m)

	for k := 0; k <= m.Dim(); k++ {
		sk, err := topology.Skeleton(m, k)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %d-cells: %d\n", k, sk.NumCells())
	}

	chi, err := topology.EulerCharacteristic(m)
	if err != nil {
		return err
	}
	oriented, err := topology.IsOriented(m)
	if err != nil {
		return err
	}
	boundary, err := topology.Boundary(m)
	if err != nil {
		return err
	}
	comps, err := topology.Components(m)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "euler: %d\n", chi)
	fmt.Fprintf(out, "components: %d\n", len(comps))
	fmt.Fprintf(out, "oriented: %t\n", oriented)
	fmt.Fprintf(out, "boundary faces: %d\n", boundary.NumCells())

	if m.Dim() == 1 || m.Dim() == 2 {
		vol, err := measure(m, cfg.QuadratureDegree)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "measure: %.6g\n", vol)
	}
	return nil
}

// measure integrates 1 over every cell chart of m.
func measure(m *mesh.Mesh, degree int) (float64, error) {
	one := func(mesh.Point) float64 { return 1 }
	total := 0.0
	for i := 0; i < m.NumCells(); i++ {
		c, err := chart.FromCell(m, i)
		if err != nil {
			return 0, err
		}
		v, err := chart.Integrate(c, degree, one)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}
