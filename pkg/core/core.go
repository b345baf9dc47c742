package core

import (
	"context"

	"github.com/scanalign/scanalign/internal/align"
	"github.com/scanalign/scanalign/internal/engine"
	"github.com/scanalign/scanalign/internal/geom"
	"github.com/scanalign/scanalign/internal/parse"
	"github.com/scanalign/scanalign/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Result = engine.Result
type Scan = types.Scan
type Frame = types.Frame
type Point = geom.Point

// ErrNonConvergence is matched by the error Run returns in strict mode when
// some scans could not be registered.
var ErrNonConvergence = align.ErrNonConvergence

// Run loads the configured inputs and registers them.
func Run(ctx context.Context, cfg Config) (Result, error) {
	return engine.Run(ctx, cfg)
}

// AlignScans registers scans that were built in memory. Scan 0 is the
// reference frame.
func AlignScans(ctx context.Context, scans []Scan, cfg Config) (Result, error) {
	return engine.AlignScans(ctx, scans, cfg)
}

// ParseScans decodes text or JSON scanner reports.
func ParseScans(name string, data []byte) ([]Scan, error) {
	return parse.Bytes(name, data)
}

// MaxManhattan returns the largest Manhattan distance between any two
// points, or 0 for fewer than two.
func MaxManhattan(points []Point) int { return align.MaxManhattan(points) }
