// Command meshtool inspects, welds and converts simplicial meshes.
package main

import "github.com/katalvlaran/lvmesh/internal/cli"

func main() {
	cli.Execute()
}
