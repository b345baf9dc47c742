package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/scanalign/scanalign/internal/align"
	"github.com/scanalign/scanalign/internal/logging"
	"github.com/scanalign/scanalign/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(t *testing.T, extra string) align.Result {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "align", "testdata", "sample.txt"))
	require.NoError(t, err)
	scans, err := parse.Bytes("sample.txt", append(b, []byte(extra)...))
	require.NoError(t, err)
	res, err := align.Merge(context.Background(), scans, align.Options{Logger: logging.Discard()})
	require.NoError(t, err)
	return res
}

func TestPrintTable_Converged(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sampleResult(t, ""), PrintOptions{NoColor: true, Duration: 1200 * time.Millisecond, Files: 1})
	out := buf.String()
	for _, want := range []string{
		"SCANNER", "POSITION",
		"68,-1246,-43",
		"1105,-1205,1229",
		"xxxx",
		"Unique beacons: 79",
		"Max scanner distance: 3621",
		"Registered 5 of 5 scans",
		"Files read: 1",
		"Duration: 1.20s",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "(cached)")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrintTable_Unregistered(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sampleResult(t, "\n--- stray ---\n5000,5000,5000\n"), PrintOptions{NoColor: true, Cached: true})
	out := buf.String()
	assert.Contains(t, out, "unregistered")
	assert.Contains(t, out, "Warning: 1 of 6 scans could not be registered")
	assert.Contains(t, out, "(cached)")
}

func TestPrintTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, align.Result{}, PrintOptions{NoColor: true})
	assert.Equal(t, "No scans given\n", buf.String())
}

func TestPrintRotations(t *testing.T) {
	var buf bytes.Buffer
	PrintRotations(&buf, true)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "24 proper rotations\n"))
	assert.Contains(t, out, "xxxx")
	assert.Contains(t, out, "23")
}

func TestWriteJSON(t *testing.T) {
	res := sampleResult(t, "")
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewDocument(res, Meta{Files: []string{"sample.txt"}, InputHash: "abc", WithBeacons: true})))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.True(t, doc.Converged)
	assert.Equal(t, 5, doc.Scans)
	assert.Equal(t, 79, doc.BeaconCount)
	assert.Len(t, doc.Beacons, 79)
	assert.Equal(t, 3621, doc.MaxDistance)
	assert.Len(t, doc.Frames, 5)
	assert.Empty(t, doc.Unregistered)
	assert.Equal(t, "abc", doc.InputHash)
	assert.Contains(t, buf.String(), `"unregistered": []`)
}

func TestNewDocument_OmitsBeacons(t *testing.T) {
	doc := NewDocument(align.Result{}, Meta{})
	assert.Nil(t, doc.Beacons)
	assert.NotNil(t, doc.Frames)
	assert.True(t, doc.Converged)
}

func TestPrintBeacons(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResult(t, "")
	PrintBeacons(&buf, res.Beacons)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 79)
	assert.Equal(t, res.Beacons[0].String(), lines[0])
}
