package geom

import (
	"fmt"
	"strings"
)

// Matrix is a row-major 3x3 integer matrix.
type Matrix [9]int

// Identity returns the 3x3 identity matrix.
func Identity() Matrix { return Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1} }

// At returns the entry at row r, column c.
func (m Matrix) At(r, c int) int { return m[r*3+c] }

// Apply returns m·p.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z,
		Y: m[3]*p.X + m[4]*p.Y + m[5]*p.Z,
		Z: m[6]*p.X + m[7]*p.Y + m[8]*p.Z,
	}
}

// Mul returns the product m·n, i.e. n applied first.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			sum := 0
			for j := 0; j < 3; j++ {
				sum += m.At(i, j) * n.At(j, k)
			}
			out[i*3+k] = sum
		}
	}
	return out
}

// Transpose returns mᵀ. For the orthogonal matrices used here this is also
// the inverse.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Float64s returns the entries as float64 in row-major order.
func (m Matrix) Float64s() []float64 {
	out := make([]float64, len(m))
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}

func (m Matrix) String() string {
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		rows[r] = fmt.Sprintf("%2d %2d %2d", m.At(r, 0), m.At(r, 1), m.At(r, 2))
	}
	return "[" + strings.Join(rows, " | ") + "]"
}
