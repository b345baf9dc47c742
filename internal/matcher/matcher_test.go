package matcher

import (
	"context"
	"testing"

	"github.com/scanalign/scanalign/internal/geom"
	"github.com/scanalign/scanalign/internal/rotation"
	"github.com/scanalign/scanalign/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The first twelve fixed points and the first twelve candidate points are
// the same beacons; the candidate sits at (100,-200,50) in the fixed frame,
// turned by rotation 5.
var (
	fixedPoints = []geom.Point{
		{X: -237, Y: -592, Z: -92},
		{X: 433, Y: -802, Z: -752},
		{X: 781, Y: 197, Z: -708},
		{X: -152, Y: 293, Z: -782},
		{X: 139, Y: -461, Z: -824},
		{X: -724, Y: -12, Z: -44},
		{X: -757, Y: -408, Z: -715},
		{X: 228, Y: -31, Z: -779},
		{X: 793, Y: 258, Z: -647},
		{X: -443, Y: 391, Z: 384},
		{X: 293, Y: -774, Z: 281},
		{X: 299, Y: -88, Z: -799},
		{X: -448, Y: -805, Z: 240},
		{X: 858, Y: -628, Z: -307},
		{X: -42, Y: -605, Z: 207},
		{X: -659, Y: 269, Z: -269},
		{X: 247, Y: 771, Z: 496},
		{X: -530, Y: -689, Z: 291},
	}
	candidatePoints = []geom.Point{
		{X: -392, Y: -142, Z: -337},
		{X: -602, Y: -802, Z: 333},
		{X: 397, Y: -758, Z: 681},
		{X: 493, Y: -832, Z: -252},
		{X: -261, Y: -874, Z: 39},
		{X: 188, Y: -94, Z: -824},
		{X: -208, Y: -765, Z: -857},
		{X: 169, Y: -829, Z: 128},
		{X: 458, Y: -697, Z: 693},
		{X: 591, Y: 334, Z: -543},
		{X: -574, Y: 231, Z: 193},
		{X: 112, Y: -849, Z: 199},
		{X: 269, Y: 408, Z: -516},
		{X: -138, Y: -701, Z: 221},
		{X: 558, Y: -772, Z: 255},
		{X: -778, Y: 367, Z: -479},
		{X: 116, Y: 493, Z: 188},
		{X: -25, Y: 691, Z: -257},
	}
)

func scanOf(id int, pts []geom.Point) types.Scan {
	return types.Scan{ID: id, Points: pts}
}

func TestMatch_ExactThresholdAccepts(t *testing.T) {
	res, ok := Match(scanOf(0, fixedPoints), scanOf(1, candidatePoints), DefaultMinOverlap)
	require.True(t, ok)
	assert.Equal(t, 5, res.RotationIndex)
	assert.Equal(t, rotation.At(5), res.Rotation)
	assert.Equal(t, geom.Point{X: -100, Y: 200, Z: -50}, res.Offset)
	assert.Equal(t, geom.Point{X: 100, Y: -200, Z: 50}, res.Transform().Translation)
	assert.Equal(t, 12, res.Overlap)
	require.Len(t, res.Points, len(candidatePoints))
	assert.Equal(t, fixedPoints[:12], res.Points[:12])

	tr := res.Transform()
	for i, q := range candidatePoints {
		assert.Equal(t, res.Points[i], tr.Apply(q))
	}
}

func TestMatch_OneShortRejects(t *testing.T) {
	cand := scanOf(1, candidatePoints[1:])
	_, ok := Match(scanOf(0, fixedPoints), cand, DefaultMinOverlap)
	assert.False(t, ok)

	res, ok := Match(scanOf(0, fixedPoints), cand, DefaultMinOverlap-1)
	require.True(t, ok)
	assert.Equal(t, 11, res.Overlap)
}

func TestMatch_Deterministic(t *testing.T) {
	first, ok := Match(scanOf(0, fixedPoints), scanOf(1, candidatePoints), DefaultMinOverlap)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := Match(scanOf(0, fixedPoints), scanOf(1, candidatePoints), DefaultMinOverlap)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestMatch_SelfIsIdentity(t *testing.T) {
	res, ok := Match(scanOf(0, fixedPoints), scanOf(0, fixedPoints), DefaultMinOverlap)
	require.True(t, ok)
	assert.Equal(t, rotation.IdentityIndex(), res.RotationIndex)
	assert.Equal(t, geom.Point{}, res.Offset)
	assert.Equal(t, len(fixedPoints), res.Overlap)
}

func TestMatch_TooFewPoints(t *testing.T) {
	tests := []struct {
		name  string
		fixed []geom.Point
		cand  []geom.Point
	}{
		{name: "empty candidate", fixed: fixedPoints, cand: nil},
		{name: "empty fixed", fixed: nil, cand: candidatePoints},
		{name: "short candidate", fixed: fixedPoints, cand: candidatePoints[:11]},
		{name: "duplicates do not count twice", fixed: fixedPoints, cand: append(append([]geom.Point{}, candidatePoints[:11]...), candidatePoints[:11]...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Match(scanOf(0, tt.fixed), scanOf(1, tt.cand), DefaultMinOverlap)
			assert.False(t, ok)
		})
	}
}

func TestMatch_NonPositiveThresholdClamps(t *testing.T) {
	res, ok := Match(scanOf(0, fixedPoints[:1]), scanOf(1, candidatePoints[:1]), 0)
	require.True(t, ok)
	assert.Equal(t, 1, res.Overlap)
	assert.Equal(t, 0, res.RotationIndex)
}

func TestMatchContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := MatchContext(ctx, scanOf(0, fixedPoints), scanOf(1, candidatePoints), DefaultMinOverlap)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkMatch(b *testing.B) {
	fixed := scanOf(0, fixedPoints)
	cand := scanOf(1, candidatePoints)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := Match(fixed, cand, DefaultMinOverlap); !ok {
			b.Fatal("expected match")
		}
	}
}
