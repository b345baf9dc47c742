package align

import "github.com/scanalign/scanalign/internal/geom"

// MaxManhattan returns the largest Manhattan distance over all unordered
// pairs of offsets, or 0 when there are fewer than two.
func MaxManhattan(offsets []geom.Point) int {
	_, _, d, _ := FarthestPair(offsets)
	return d
}

// FarthestPair returns the indexes of the first pair, in enumeration order,
// at the maximum Manhattan distance. ok is false for fewer than two offsets.
func FarthestPair(offsets []geom.Point) (i, j, dist int, ok bool) {
	for a := 0; a < len(offsets); a++ {
		for b := a + 1; b < len(offsets); b++ {
			d := offsets[a].Manhattan(offsets[b])
			if !ok || d > dist {
				i, j, dist, ok = a, b, d, true
			}
		}
	}
	return i, j, dist, ok
}
