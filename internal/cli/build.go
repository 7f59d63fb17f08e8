package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/builder"
)

var (
	buildOut    string
	buildOrigin []float64
)

var buildCmd = &cobra.Command{
	Use:   "build <solid>",
	Short: "Write the triangulated surface of a Platonic solid",
	Long: `build writes the outward-oriented surface of a tetrahedron, cube,
octahedron or icosahedron as Gmsh.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "output", "o", "", "output .msh file (default stdout)")
	buildCmd.Flags().Float64SliceVar(&buildOrigin, "origin", nil, "translate the solid to this point")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	name, err := builder.ParsePlatonicName(args[0])
	if err != nil {
		return err
	}
	var opts []builder.BuilderOption
	if len(buildOrigin) > 0 {
		opts = append(opts, builder.WithOrigin(buildOrigin...))
	}
	m, err := builder.Build(builder.Platonic(name), opts...)
	if err != nil {
		return err
	}
	logger.Printf("built %v: %v", name, m)
	return writeMesh(cmd.OutOrStdout(), buildOut, m)
}
