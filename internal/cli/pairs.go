package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/topology"
)

var pairsDrop bool

var pairsCmd = &cobra.Command{
	Use:   "pairs <file>",
	Short: "List the cell pairs sharing each codimension-one face",
	Args:  cobra.ExactArgs(1),
	RunE:  runPairs,
}

func init() {
	pairsCmd.Flags().BoolVar(&pairsDrop, "drop-junction", false, "drop the last pair of every junction face")
	rootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command, args []string) error {
	m, err := readMesh(args[0])
	if err != nil {
		return err
	}
	if m.Dim() == 0 {
		return fmt.Errorf("pairs: %s has no faces", args[0])
	}
	faces, err := topology.Skeleton(m, m.Dim()-1)
	if err != nil {
		return err
	}
	var opts []topology.Option
	if pairsDrop || cfg.DropJunctionPair {
		opts = append(opts, topology.WithDropJunctionPair())
	}
	pairs, err := topology.CellPairs(m, faces, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range pairs {
		if p.IsBoundary() {
			fmt.Fprintf(out, "%d boundary face %d\n", p.First, p.LocalFace())
			continue
		}
		fmt.Fprintf(out, "%d %d\n", p.First, p.Second)
	}
	return nil
}
