// Package rotation exposes the 24 proper rotations of the cube as a fixed,
// ordered table. Matching is first-hit over this order, so the order is part
// of the contract and must not change.
package rotation

import (
	"fmt"
	"math"

	"github.com/scanalign/scanalign/internal/geom"
	"gonum.org/v1/gonum/mat"
)

// Count is the order of the group.
const Count = 24

// Names spell each entry as the sequence of counter-clockwise quarter turns
// about the x, y and z axes that produces it.
var names = [Count]string{
	"x", "y", "z", "xx", "xy", "xz", "yy", "yz", "zx", "zz",
	"xxx", "xxy", "xxz", "xyy", "xzx", "xzz", "yyy", "yyz", "zzz", "xxxx",
	"xxxz", "xxzx", "xyyz", "xzzz",
}

var table = [Count]geom.Matrix{
	{1, 0, 0, 0, 0, -1, 0, 1, 0},
	{0, 0, 1, 0, 1, 0, -1, 0, 0},
	{0, -1, 0, 1, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, -1, 0, 0, 0, -1},
	{0, 1, 0, 0, 0, -1, -1, 0, 0},
	{0, 0, 1, 1, 0, 0, 0, 1, 0},
	{-1, 0, 0, 0, 1, 0, 0, 0, -1},
	{0, -1, 0, 0, 0, 1, -1, 0, 0},
	{0, -1, 0, 0, 0, -1, 1, 0, 0},
	{-1, 0, 0, 0, -1, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 1, 0, -1, 0},
	{0, 0, -1, 0, -1, 0, -1, 0, 0},
	{0, 1, 0, 1, 0, 0, 0, 0, -1},
	{-1, 0, 0, 0, 0, -1, 0, -1, 0},
	{0, 0, 1, 0, -1, 0, 1, 0, 0},
	{-1, 0, 0, 0, 0, 1, 0, 1, 0},
	{0, 0, -1, 0, 1, 0, 1, 0, 0},
	{0, -1, 0, -1, 0, 0, 0, 0, -1},
	{0, 1, 0, -1, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 1, 0, 0, 0, 1},
	{0, 0, -1, 1, 0, 0, 0, -1, 0},
	{0, 1, 0, 0, 0, 1, 1, 0, 0},
	{0, 0, 1, -1, 0, 0, 0, -1, 0},
	{0, 0, -1, -1, 0, 0, 0, 1, 0},
}

var index map[geom.Matrix]int

func init() {
	index = make(map[geom.Matrix]int, Count)
	for i, m := range table {
		if err := Validate(m); err != nil {
			panic(fmt.Sprintf("rotation table entry %d: %v", i, err))
		}
		if j, dup := index[m]; dup {
			panic(fmt.Sprintf("rotation table entries %d and %d are equal", j, i))
		}
		index[m] = i
	}
}

// All returns the group in its fixed order. The slice is a copy.
func All() []geom.Matrix {
	out := make([]geom.Matrix, Count)
	copy(out, table[:])
	return out
}

// At returns the i-th rotation. It panics if i is out of range.
func At(i int) geom.Matrix { return table[i] }

// Name returns the quarter-turn spelling of the i-th rotation.
func Name(i int) string { return names[i] }

// IndexOf reports the position of m in the table.
func IndexOf(m geom.Matrix) (int, bool) {
	i, ok := index[m]
	return i, ok
}

// IdentityIndex is the position of the identity in the table.
func IdentityIndex() int {
	i, _ := IndexOf(geom.Identity())
	return i
}

// Validate reports whether m is a signed permutation matrix with
// determinant +1.
func Validate(m geom.Matrix) error {
	for r := 0; r < 3; r++ {
		rowNonZero, colNonZero := 0, 0
		for c := 0; c < 3; c++ {
			v := m.At(r, c)
			if v < -1 || v > 1 {
				return fmt.Errorf("entry (%d,%d) = %d outside {-1,0,1}", r, c, v)
			}
			if v != 0 {
				rowNonZero++
			}
			if m.At(c, r) != 0 {
				colNonZero++
			}
		}
		if rowNonZero != 1 {
			return fmt.Errorf("row %d has %d non-zero entries", r, rowNonZero)
		}
		if colNonZero != 1 {
			return fmt.Errorf("column %d has %d non-zero entries", r, colNonZero)
		}
	}
	det := mat.Det(mat.NewDense(3, 3, m.Float64s()))
	if math.Round(det) != 1 {
		return fmt.Errorf("determinant %.0f, want 1", det)
	}
	return nil
}
