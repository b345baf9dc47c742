package rotation

import (
	"testing"

	"github.com/scanalign/scanalign/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_StableAndDistinct(t *testing.T) {
	a := All()
	b := All()
	require.Len(t, a, Count)
	assert.Equal(t, a, b)

	a[0] = geom.Matrix{}
	assert.NotEqual(t, a[0], At(0), "All must return a copy")

	seen := map[geom.Matrix]bool{}
	for i, m := range All() {
		assert.False(t, seen[m], "duplicate rotation at %d", i)
		seen[m] = true
		idx, ok := IndexOf(m)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestIdentityIndex(t *testing.T) {
	assert.Equal(t, 19, IdentityIndex())
	assert.Equal(t, geom.Identity(), At(IdentityIndex()))
	assert.Equal(t, "xxxx", Name(IdentityIndex()))
}

func TestGroupClosure(t *testing.T) {
	for i, r1 := range All() {
		for j, r2 := range All() {
			_, ok := IndexOf(r1.Mul(r2))
			assert.True(t, ok, "R%d·R%d not in group", i, j)
		}
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	pts := []geom.Point{{X: 1, Y: 2, Z: 3}, {X: -5, Y: 0, Z: 7}, {X: 404, Y: -588, Z: -901}, {X: 0, Y: 0, Z: 0}}
	for i, r := range All() {
		inv := r.Transpose()
		_, ok := IndexOf(inv)
		assert.True(t, ok, "inverse of R%d not in group", i)
		for _, p := range pts {
			assert.Equal(t, p, inv.Apply(r.Apply(p)), "R%d", i)
		}
	}
}

func TestNamesSpellRotations(t *testing.T) {
	x, y, z := At(0), At(1), At(2)
	axis := map[rune]geom.Matrix{'x': x, 'y': y, 'z': z}
	for i := 0; i < Count; i++ {
		m := geom.Identity()
		for _, c := range Name(i) {
			m = axis[c].Mul(m)
		}
		assert.Equal(t, At(i), m, "rotation %d (%s)", i, Name(i))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       geom.Matrix
		wantErr bool
	}{
		{name: "identity", m: geom.Identity()},
		{name: "reflection", m: geom.Matrix{-1, 0, 0, 0, 1, 0, 0, 0, 1}, wantErr: true},
		{name: "scaled", m: geom.Matrix{2, 0, 0, 0, 1, 0, 0, 0, 1}, wantErr: true},
		{name: "two per row", m: geom.Matrix{1, 1, 0, 0, 1, 0, 0, 0, 1}, wantErr: true},
		{name: "zero column", m: geom.Matrix{1, 0, 0, 1, 0, 0, 0, 0, 1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.m)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
