package core

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Sample(t *testing.T) {
	dir := t.TempDir()
	b, err := os.ReadFile(filepath.Join("..", "..", "internal", "align", "testdata", "sample.txt"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scans.txt"), b, 0o644))

	res, err := Run(context.Background(), Config{Root: dir, Inputs: "scans.txt", NoCache: true})
	require.NoError(t, err)
	assert.Len(t, res.Beacons, 79)
	assert.Equal(t, 3621, MaxManhattan(res.Offsets()))

	var buf bytes.Buffer
	require.NoError(t, MarshalResult(&buf, res))
	doc, err := UnmarshalResult(&buf)
	require.NoError(t, err)
	assert.Equal(t, 79, doc.BeaconCount)
	assert.Len(t, doc.Beacons, 79)
	assert.Len(t, doc.Frames, 5)
}

func TestAlignScans_StrictError(t *testing.T) {
	scans := []Scan{
		{ID: 0, Points: []Point{{X: 1}, {Y: 1}}},
		{ID: 1, Points: []Point{{Z: 1}}},
	}
	res, err := AlignScans(context.Background(), scans, Config{Strict: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonConvergence))
	assert.Equal(t, []int{1}, res.Unregistered)
}

func TestParseScans(t *testing.T) {
	scans, err := ParseScans("in.json", []byte(`[[[1,2,3]],{"name":"b","beacons":[[4,5,6]]}]`))
	require.NoError(t, err)
	require.Len(t, scans, 2)
	assert.Equal(t, Point{X: 4, Y: 5, Z: 6}, scans[1].Points[0])
	assert.Equal(t, "b", scans[1].Name)

	_, err = ParseScans("in.txt", []byte("nope"))
	assert.Error(t, err)
}

func TestMaxManhattan(t *testing.T) {
	assert.Equal(t, 0, MaxManhattan(nil))
	assert.Equal(t, 12, MaxManhattan([]Point{{X: 1, Y: 1, Z: 1}, {X: -3, Y: 5, Z: -3}}))
}
