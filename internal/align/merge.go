package align

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/scanalign/scanalign/internal/geom"
	"github.com/scanalign/scanalign/internal/logging"
	"github.com/scanalign/scanalign/internal/matcher"
	"github.com/scanalign/scanalign/internal/rotation"
	"github.com/scanalign/scanalign/internal/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrNonConvergence marks a registration that ended with scans left over.
var ErrNonConvergence = errors.New("registration did not converge")

// NonConvergenceError lists the scans that could not be tied to the
// reference frame.
type NonConvergenceError struct {
	Unregistered []int
	Total        int
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%d of %d scans could not be registered: %v", len(e.Unregistered), e.Total, e.Unregistered)
}

func (e *NonConvergenceError) Unwrap() error { return ErrNonConvergence }

// Options tune a merge. The zero value uses the default overlap threshold
// and one worker per CPU.
type Options struct {
	MinOverlap int
	Workers    int
	Logger     logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.MinOverlap <= 0 {
		o.MinOverlap = matcher.DefaultMinOverlap
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = logging.Log
	}
	return o
}

// Stats counts the matching work done by a merge.
type Stats struct {
	PairsTried int           `json:"pairs_tried"`
	Matches    int           `json:"matches"`
	Duration   time.Duration `json:"duration"`
}

// Result is the outcome of a merge. When Unregistered is non-empty the
// beacon set and frames only cover the registered scans.
type Result struct {
	Beacons      []geom.Point  `json:"beacons"`
	Frames       []types.Frame `json:"frames"`
	Unregistered []int         `json:"unregistered,omitempty"`
	Total        int           `json:"total"`
	Stats        Stats         `json:"stats"`
}

// Converged reports whether every scan was registered.
func (r Result) Converged() bool { return len(r.Unregistered) == 0 }

// Err returns a *NonConvergenceError when scans were left over, nil otherwise.
func (r Result) Err() error {
	if r.Converged() {
		return nil
	}
	return &NonConvergenceError{Unregistered: append([]int(nil), r.Unregistered...), Total: r.Total}
}

// Offsets returns the scan origins in the reference frame, in registration
// order. The reference scan contributes the zero point.
func (r Result) Offsets() []geom.Point {
	out := make([]geom.Point, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = f.Offset
	}
	return out
}

// MaxDistance is the largest Manhattan distance between two scan origins.
func (r Result) MaxDistance() int { return MaxManhattan(r.Offsets()) }

// Frame returns the registration of the scan with the given ID.
func (r Result) Frame(id int) (types.Frame, bool) {
	for _, f := range r.Frames {
		if f.ScanID == id {
			return f, true
		}
	}
	return types.Frame{}, false
}

// anchor is a registered scan waiting to be matched against the pool.
// toRef maps its Points into the reference frame.
type anchor struct {
	scan  types.Scan
	toRef geom.Transform
}

type merger struct {
	opts     Options
	scans    []types.Scan
	beacons  geom.Set
	frames   []types.Frame
	frontier []anchor
	pool     []int
	stats    Stats
}

// Merge registers scans into the frame of scans[0]. The returned error is
// only set when ctx is cancelled; a merge that leaves scans unregistered
// still returns a nil error and reports them through Result.Unregistered.
func Merge(ctx context.Context, scans []types.Scan, opts Options) (Result, error) {
	started := time.Now()
	m := &merger{
		opts:    opts.withDefaults(),
		scans:   scans,
		beacons: make(geom.Set),
	}
	if len(scans) > 0 {
		m.seed()
		if err := m.run(ctx); err != nil {
			return Result{}, err
		}
	}
	m.stats.Duration = time.Since(started)

	res := Result{
		Beacons: m.beacons.Sorted(),
		Frames:  m.frames,
		Total:   len(scans),
		Stats:   m.stats,
	}
	for _, idx := range m.pool {
		res.Unregistered = append(res.Unregistered, scans[idx].ID)
	}
	if !res.Converged() {
		m.opts.Logger.WithFields(logging.Fields{
			"unregistered": res.Unregistered,
			"total":        res.Total,
		}).Warn("registration did not converge")
	}
	return res, nil
}

func (m *merger) seed() {
	ref := m.scans[0]
	m.beacons.Add(ref.Points...)
	m.frames = append(m.frames, types.Frame{
		ScanID:        ref.ID,
		Name:          ref.Label(),
		Transform:     geom.IdentityTransform(),
		AnchorID:      -1,
		RotationIndex: rotation.IdentityIndex(),
	})
	m.frontier = append(m.frontier, anchor{scan: ref, toRef: geom.IdentityTransform()})
	for i := 1; i < len(m.scans); i++ {
		m.pool = append(m.pool, i)
	}
}

func (m *merger) run(ctx context.Context) error {
	for len(m.frontier) > 0 && len(m.pool) > 0 {
		a := m.frontier[0]
		m.frontier = m.frontier[1:]

		found, err := m.tryPool(ctx, a.scan)
		if err != nil {
			return err
		}
		m.stats.PairsTried += len(m.pool)

		remaining := m.pool[:0]
		for i, idx := range m.pool {
			if found[i] == nil {
				remaining = append(remaining, idx)
				continue
			}
			m.register(a, m.scans[idx], found[i])
		}
		m.pool = remaining
	}
	return nil
}

// tryPool matches every pooled scan against fixed. Results are indexed like
// m.pool, nil where no match was found.
func (m *merger) tryPool(ctx context.Context, fixed types.Scan) ([]*matcher.Result, error) {
	found := make([]*matcher.Result, len(m.pool))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Workers)
	for i, idx := range m.pool {
		i := i
		cand := m.scans[idx]
		g.Go(func() error {
			res, ok, err := matcher.MatchContext(gctx, fixed, cand, m.opts.MinOverlap)
			if err != nil {
				return err
			}
			if ok {
				found[i] = &res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("matching against scan %d: %w", fixed.ID, err)
	}
	return found, nil
}

// register records a matched scan. The match maps the scan into the
// anchor's point frame; composing with the anchor's toRef lands it in the
// reference frame. Frontier points are stored already transformed, so the
// new anchor's toRef is the identity.
func (m *merger) register(a anchor, scan types.Scan, res *matcher.Result) {
	tr := res.Transform().Then(a.toRef)
	points := a.toRef.ApplyAll(res.Points)
	m.beacons.Add(points...)
	m.frames = append(m.frames, types.Frame{
		ScanID:        scan.ID,
		Name:          scan.Label(),
		Transform:     tr,
		Offset:        tr.Translation,
		AnchorID:      a.scan.ID,
		RotationIndex: res.RotationIndex,
		Overlap:       res.Overlap,
	})
	m.frontier = append(m.frontier, anchor{
		scan:  types.Scan{ID: scan.ID, Name: scan.Name, Points: points},
		toRef: geom.IdentityTransform(),
	})
	m.stats.Matches++

	m.opts.Logger.WithFields(logging.Fields{
		"scan":     scan.ID,
		"anchor":   a.scan.ID,
		"rotation": res.RotationIndex,
		"overlap":  res.Overlap,
		"offset":   tr.Translation.String(),
	}).Debug("scan registered")
}
