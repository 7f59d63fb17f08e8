package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/weld"
)

var (
	weldTol float64
	weldOut string
)

var weldCmd = &cobra.Command{
	Use:   "weld <file> <file>...",
	Short: "Merge meshes, identifying coincident vertices",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runWeld,
}

func init() {
	weldCmd.Flags().Float64Var(&weldTol, "tolerance", 0, "weld distance (default from config)")
	weldCmd.Flags().StringVarP(&weldOut, "output", "o", "", "output .msh file (default stdout)")
	rootCmd.AddCommand(weldCmd)
}

func runWeld(cmd *cobra.Command, args []string) error {
	tol := cfg.Tolerance
	if cmd.Flags().Changed("tolerance") {
		tol = weldTol
	}
	if !(tol > 0) || math.IsInf(tol, 0) {
		return fmt.Errorf("weld: tolerance %v must be positive", tol)
	}

	meshes := make([]*mesh.Mesh, len(args))
	for i, path := range args {
		m, err := readMesh(path)
		if err != nil {
			return err
		}
		meshes[i] = m
	}
	out, err := weld.New(weld.WithTolerance(tol)).Weld(meshes[0], meshes[1], meshes[2:]...)
	if err != nil {
		return err
	}
	logger.Printf("welded %d meshes (tol=%g): %v", len(meshes), tol, out)
	return writeMesh(cmd.OutOrStdout(), weldOut, out)
}
