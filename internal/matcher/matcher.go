// Package matcher searches for the rigid transform that lays one scan on top
// of another. The search is exhaustive over the rotation table and the
// point-pair translation hypotheses, and accepts the first hypothesis that
// reaches the overlap threshold.
package matcher

import (
	"context"

	"github.com/scanalign/scanalign/internal/geom"
	"github.com/scanalign/scanalign/internal/rotation"
	"github.com/scanalign/scanalign/internal/types"
)

// DefaultMinOverlap is the number of coinciding beacons required to accept a
// transform.
const DefaultMinOverlap = 12

// Result describes an accepted alignment of a candidate scan onto a fixed one.
type Result struct {
	// Points are the candidate's unique points expressed in the fixed scan's frame.
	Points []geom.Point
	// Offset is the accepted hypothesis q - p, where q is a rotated candidate
	// point and p the fixed point it was paired with.
	Offset        geom.Point
	Rotation      geom.Matrix
	RotationIndex int
	// Overlap is the number of candidate points that landed on fixed points.
	Overlap int
}

// Transform returns the mapping from the candidate's local frame into the
// fixed scan's frame.
func (r Result) Transform() geom.Transform {
	return geom.Transform{Rotation: r.Rotation, Translation: r.Offset.Neg()}
}

// Match aligns candidate onto fixed. It returns false when no rotation and
// translation make at least minOverlap points coincide; that is an expected
// outcome, not an error.
func Match(fixed, candidate types.Scan, minOverlap int) (Result, bool) {
	res, ok, _ := MatchContext(context.Background(), fixed, candidate, minOverlap)
	return res, ok
}

// MatchContext is Match with cancellation checked between rotations.
func MatchContext(ctx context.Context, fixed, candidate types.Scan, minOverlap int) (Result, bool, error) {
	if minOverlap < 1 {
		minOverlap = 1
	}
	fixedSet := geom.NewSet(fixed.Points...)
	cand := unique(candidate.Points)
	if len(cand) < minOverlap || fixedSet.Len() < minOverlap {
		return Result{}, false, nil
	}

	rotated := make([]geom.Point, len(cand))
	for ri, rot := range rotation.All() {
		if err := ctx.Err(); err != nil {
			return Result{}, false, err
		}
		for i, q := range cand {
			rotated[i] = rot.Apply(q)
		}
		tried := make(geom.Set)
		for _, p := range fixed.Points {
			for _, q := range rotated {
				offset := q.Sub(p)
				if tried.Has(offset) {
					continue
				}
				tried.Add(offset)
				n := overlap(fixedSet, rotated, offset, minOverlap)
				if n < minOverlap {
					continue
				}
				pts := make([]geom.Point, len(rotated))
				for i, r := range rotated {
					pts[i] = r.Sub(offset)
				}
				return Result{
					Points:        pts,
					Offset:        offset,
					Rotation:      rot,
					RotationIndex: ri,
					Overlap:       n,
				}, true, nil
			}
		}
	}
	return Result{}, false, nil
}

// overlap counts rotated points that land on fixed after subtracting offset.
// It stops early once the threshold can no longer be reached and returns the
// count so far.
func overlap(fixed geom.Set, rotated []geom.Point, offset geom.Point, need int) int {
	n := 0
	for i, r := range rotated {
		if fixed.Has(r.Sub(offset)) {
			n++
		}
		if n+len(rotated)-i-1 < need {
			return n
		}
	}
	return n
}

func unique(pts []geom.Point) []geom.Point {
	seen := make(geom.Set, len(pts))
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		if seen.Has(p) {
			continue
		}
		seen.Add(p)
		out = append(out, p)
	}
	return out
}
