package topology_test

import "github.com/katalvlaran/lvmesh/matrix"

// mulSparse reports whether a·b is the zero matrix.
func mulSparse(a, b *matrix.Sparse) (bool, error) {
	p, err := matrix.Mul(a, b)
	if err != nil {
		return false, err
	}
	return p.IsZero(), nil
}
