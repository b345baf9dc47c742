package engine

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/scanalign/scanalign/internal/align"
	"github.com/scanalign/scanalign/internal/cache"
	"github.com/scanalign/scanalign/internal/logging"
	"github.com/scanalign/scanalign/internal/matcher"
	"github.com/scanalign/scanalign/internal/parse"
	"github.com/scanalign/scanalign/internal/types"
)

// Config controls where scans come from and how they are registered.
type Config struct {
	Root string
	// Inputs is a comma-separated list of files or doublestar globs,
	// relative to Root.
	Inputs string
	// Data, when non-nil, is parsed instead of Inputs (e.g. stdin).
	Data       []byte
	DataName   string
	MinOverlap int
	Threads    int
	NoCache    bool
	// Strict turns an unconverged registration into an error.
	Strict bool
}

// Result is a registration plus where its input came from.
type Result struct {
	align.Result
	Files     []string
	InputHash string
	Cached    bool
	Duration  time.Duration
}

// Input is the loaded, parsed input of a run.
type Input struct {
	Scans []types.Scan
	Files []string
	Hash  string
}

func (cfg Config) normalized() Config {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.MinOverlap <= 0 {
		cfg.MinOverlap = matcher.DefaultMinOverlap
	}
	if cfg.Threads <= 0 {
		cfg.Threads = runtime.GOMAXPROCS(0)
	}
	if cfg.DataName == "" {
		cfg.DataName = "<stdin>"
	}
	return cfg
}

// Load reads and parses the configured input.
func Load(cfg Config) (Input, error) {
	cfg = cfg.normalized()
	d := xxhash.New()
	if cfg.Data != nil {
		scans, err := parse.Bytes(cfg.DataName, cfg.Data)
		if err != nil {
			return Input{}, err
		}
		_, _ = d.Write(cfg.Data)
		return Input{Scans: scans, Hash: fastHash(d.Sum64())}, nil
	}

	patterns := parse.SplitPatterns(cfg.Inputs)
	if len(patterns) == 0 {
		return Input{}, fmt.Errorf("no input given")
	}
	files, err := parse.Resolve(cfg.Root, patterns)
	if err != nil {
		return Input{}, err
	}
	var in Input
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return Input{}, fmt.Errorf("read input: %w", err)
		}
		scans, err := parse.Bytes(f, b)
		if err != nil {
			return Input{}, err
		}
		_, _ = d.WriteString(f)
		_, _ = d.Write([]byte{0})
		_, _ = d.Write(b)
		in.Scans = append(in.Scans, scans...)
	}
	in.Scans = parse.Renumber(in.Scans)
	in.Files = files
	in.Hash = fastHash(d.Sum64())
	return in, nil
}

// Run loads the input, consults the cache and registers the scans. The
// result is returned even when registration does not converge; with
// cfg.Strict the error is then a *align.NonConvergenceError.
func Run(ctx context.Context, cfg Config) (Result, error) {
	cfg = cfg.normalized()
	started := time.Now()
	in, err := Load(cfg)
	if err != nil {
		return Result{}, err
	}
	log := logging.Log.WithFields(logging.Fields{"files": len(in.Files), "scans": len(in.Scans), "hash": in.Hash})

	var db cache.DB
	key := cache.Key(in.Hash, cfg.MinOverlap)
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
		if e, ok := db.Get(key); ok {
			log.Debug("using cached registration")
			res := Result{Result: e.Result, Files: in.Files, InputHash: in.Hash, Cached: true, Duration: time.Since(started)}
			return res, strictErr(cfg, res)
		}
	}

	log.Debug("registering scans")
	ar, err := align.Merge(ctx, in.Scans, align.Options{
		MinOverlap: cfg.MinOverlap,
		Workers:    cfg.Threads,
		Logger:     logging.Log,
	})
	if err != nil {
		return Result{}, fmt.Errorf("registration: %w", err)
	}
	res := Result{Result: ar, Files: in.Files, InputHash: in.Hash, Duration: time.Since(started)}

	if !cfg.NoCache {
		db.Put(key, in.Files, ar)
		if err := cache.Save(cfg.Root, db); err != nil {
			log.WithError(err).Debug("cache not saved")
		}
	}
	return res, strictErr(cfg, res)
}

// AlignScans registers already-parsed scans without touching the cache.
func AlignScans(ctx context.Context, scans []types.Scan, cfg Config) (Result, error) {
	cfg = cfg.normalized()
	started := time.Now()
	ar, err := align.Merge(ctx, scans, align.Options{
		MinOverlap: cfg.MinOverlap,
		Workers:    cfg.Threads,
		Logger:     logging.Log,
	})
	if err != nil {
		return Result{}, err
	}
	res := Result{Result: ar, Duration: time.Since(started)}
	return res, strictErr(cfg, res)
}

func strictErr(cfg Config, res Result) error {
	if cfg.Strict {
		return res.Err()
	}
	return nil
}

func fastHash(sum uint64) string {
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
