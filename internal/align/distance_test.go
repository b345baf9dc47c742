package align

import (
	"testing"

	"github.com/scanalign/scanalign/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestMaxManhattan(t *testing.T) {
	tests := []struct {
		name    string
		offsets []geom.Point
		want    int
	}{
		{name: "none", want: 0},
		{name: "one", offsets: []geom.Point{{X: 5, Y: 5, Z: 5}}, want: 0},
		{name: "pair", offsets: []geom.Point{{X: 1105, Y: -1205, Z: 1229}, {X: -92, Y: -2380, Z: -20}}, want: 3621},
		{
			name: "sample scanners",
			offsets: []geom.Point{
				{X: 0, Y: 0, Z: 0}, {X: 68, Y: -1246, Z: -43}, {X: 1105, Y: -1205, Z: 1229}, {X: -92, Y: -2380, Z: -20}, {X: -20, Y: -1133, Z: 1061},
			},
			want: 3621,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxManhattan(tt.offsets))
		})
	}
}

func TestFarthestPair(t *testing.T) {
	_, _, _, ok := FarthestPair([]geom.Point{{X: 1, Y: 1, Z: 1}})
	assert.False(t, ok)

	offs := []geom.Point{{X: 0, Y: 0, Z: 0}, {X: 68, Y: -1246, Z: -43}, {X: 1105, Y: -1205, Z: 1229}, {X: -92, Y: -2380, Z: -20}}
	i, j, d, ok := FarthestPair(offs)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 3, j)
	assert.Equal(t, 3621, d)

	// Ties keep the first pair in enumeration order.
	i, j, d, _ = FarthestPair([]geom.Point{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}})
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
	assert.Equal(t, 2, d)
}
