package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/meshio"
)

// setupCLITest writes a quiet config and a unit-square fixture (two
// triangles) and returns their paths.
func setupCLITest(t *testing.T) (cfgFile, square string) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfgFile = filepath.Join(tmp, "meshtool.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("verbose: false\n"), 0o644))

	m, err := builder.Build(builder.Rectangle(1, 1, 1, 1))
	require.NoError(t, err)
	square = filepath.Join(tmp, "square.msh")
	require.NoError(t, meshio.WriteGmshFile(square, m))
	return cfgFile, square
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInfo(t *testing.T) {
	cfgFile, square := setupCLITest(t)
	out, err := execute(t, "--config", cfgFile, "info", square)
	require.NoError(t, err)
	require.Equal(t, `Mesh(D=2, U=3, V=4, C=2)
  0-cells: 4
  1-cells: 5
  2-cells: 2
euler: 1
components: 1
oriented: true
boundary faces: 4
measure: 1
`, out)
}

func TestSkeleton(t *testing.T) {
	cfgFile, square := setupCLITest(t)
	out, err := execute(t, "--config", cfgFile, "skeleton", "-k", "1", square)
	require.NoError(t, err)
	require.Contains(t, out, "$Nodes\n4\n")
	require.Contains(t, out, "$Elements\n5\n")

	edges := filepath.Join(filepath.Dir(square), "edges.msh")
	_, err = execute(t, "--config", cfgFile, "skeleton", "-k", "1", "-o", edges, square)
	require.NoError(t, err)
	back, err := meshio.ReadFile(edges)
	require.NoError(t, err)
	require.Equal(t, 1, back.Dim())
	require.Equal(t, 5, back.NumCells())

	_, err = execute(t, "--config", cfgFile, "skeleton", "-k", "5", square)
	require.Error(t, err)
}

func TestWeld_SelfIsIdentityOnVertices(t *testing.T) {
	cfgFile, square := setupCLITest(t)
	dst := filepath.Join(filepath.Dir(square), "welded.msh")
	_, err := execute(t, "--config", cfgFile, "weld", square, square, "-o", dst)
	require.NoError(t, err)

	m, err := meshio.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, 4, m.NumVertices())
	require.Equal(t, 4, m.NumCells())
}

func TestPairs(t *testing.T) {
	cfgFile, square := setupCLITest(t)
	out, err := execute(t, "--config", cfgFile, "pairs", square)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, 4, strings.Count(out, "boundary face"))
}

func TestIntersect_SelfKeepsCell(t *testing.T) {
	cfgFile, square := setupCLITest(t)
	out, err := execute(t, "--config", cfgFile, "intersect", square, "0", "0")
	require.NoError(t, err)
	require.Contains(t, out, "pieces: 1 measure: 0.5\n")

	_, err = execute(t, "--config", cfgFile, "intersect", square, "0", "x")
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	cfgFile, _ := setupCLITest(t)
	out, err := execute(t, "--config", cfgFile, "build", "icosahedron")
	require.NoError(t, err)
	require.Contains(t, out, "$Nodes\n12\n")
	require.Contains(t, out, "$Elements\n20\n")

	_, err = execute(t, "--config", cfgFile, "build", "sphere")
	require.ErrorIs(t, err, builder.ErrUnknownSolid)
}

func TestBadConfig(t *testing.T) {
	_, square := setupCLITest(t)
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "info", square)
	require.ErrorContains(t, err, "cannot load config")
}
