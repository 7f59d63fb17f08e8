package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/topology"
)

var (
	skeletonK   int
	skeletonOut string
)

var skeletonCmd = &cobra.Command{
	Use:   "skeleton <file>",
	Short: "Write the k-skeleton of a mesh as Gmsh",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkeleton,
}

func init() {
	skeletonCmd.Flags().IntVarP(&skeletonK, "dim", "k", 1, "skeleton dimension")
	skeletonCmd.Flags().StringVarP(&skeletonOut, "output", "o", "", "output .msh file (default stdout)")
	rootCmd.AddCommand(skeletonCmd)
}

func runSkeleton(cmd *cobra.Command, args []string) error {
	m, err := readMesh(args[0])
	if err != nil {
		return err
	}
	sk, err := topology.Skeleton(m, skeletonK)
	if err != nil {
		return err
	}
	logger.Printf("%d-skeleton: %d cells", skeletonK, sk.NumCells())
	return writeMesh(cmd.OutOrStdout(), skeletonOut, sk)
}
