// Package cli implements the meshtool command tree.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/internal/config"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/meshio"
)

var (
	cfgPath string
	verbose bool

	// cfg is loaded once per invocation by rootCmd's pre-run hook.
	cfg = config.Default()

	logger = log.New(io.Discard, "meshtool: ", 0)
)

var rootCmd = &cobra.Command{
	Use:          "meshtool",
	Short:        "Inspect, weld and convert simplicial meshes",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `meshtool reads GiD (.gid) and Gmsh v2 (.msh) triangle meshes, reports
their topology, extracts skeletons, welds meshes together and intersects cells.
Settings are read from ~/.lvmesh/meshtool.yaml unless --config is given.`,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.lvmesh/meshtool.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	if verbose {
		c.Verbose = true
	}
	cfg = c
	if cfg.Verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	} else {
		logger.SetOutput(io.Discard)
	}
	return nil
}

// Execute is called by cmd/meshtool.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readMesh loads path, honouring the configured physical group for Gmsh.
func readMesh(path string) (*mesh.Mesh, error) {
	var opts []meshio.Option
	if cfg.Physical != "" {
		opts = append(opts, meshio.WithPhysical(cfg.Physical))
	}
	m, err := meshio.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	logger.Printf("read %s: %v", path, m)
	return m, nil
}

// writeMesh writes m as Gmsh to path, or to w when path is empty.
func writeMesh(w io.Writer, path string, m *mesh.Mesh) error {
	if path == "" {
		return meshio.WriteGmsh(w, m)
	}
	if err := meshio.WriteGmshFile(path, m); err != nil {
		return err
	}
	logger.Printf("wrote %s: %v", path, m)
	return nil
}
