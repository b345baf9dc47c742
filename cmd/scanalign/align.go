package scanalign

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/scanalign/scanalign/internal/audit"
	"github.com/scanalign/scanalign/internal/cache"
	"github.com/scanalign/scanalign/internal/engine"
	"github.com/scanalign/scanalign/internal/logging"
	"github.com/scanalign/scanalign/internal/matcher"
	"github.com/scanalign/scanalign/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagPath       string
	flagInput      string
	flagMinOverlap int
	flagBeacons    bool
	flagNoAudit    bool
	flagTimeout    time.Duration
)

func init() {
	cmd := &cobra.Command{
		Use:   "align [files or globs...]",
		Short: "Register scanner reports and print scanner positions",
		Long: `Register scanner reports into the frame of the first scan.

Inputs are files or doublestar globs relative to --path, given as arguments
or via --input (comma separated). Use "-" to read from stdin. Text input uses
"--- scanner N ---" headers followed by one x,y,z beacon per line; JSON input
is an array of scanners or an object with a "scanners" array.`,
		RunE: runAlign,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "root directory inputs are resolved against")
	cmd.Flags().StringVarP(&flagInput, "input", "i", "", "comma-separated input files or globs")
	cmd.Flags().IntVar(&flagMinOverlap, "min-overlap", 0, fmt.Sprintf("shared beacons needed to register two scans (default %d)", matcher.DefaultMinOverlap))
	cmd.Flags().BoolVar(&flagBeacons, "beacons", false, "also print every unique beacon")
	cmd.Flags().BoolVar(&flagNoAudit, "no-audit", false, "do not record this run in the audit log")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "abort registration after this long (0 = no limit)")
}

func runAlign(cmd *cobra.Command, args []string) error {
	abs, _ := filepath.Abs(flagPath)
	// Load configs: CLI > local > global
	gcfg, lcfg, err := loadConfigs(abs)
	if err != nil {
		return err
	}

	inputs := flagInput
	if len(args) > 0 {
		inputs = strings.Join(args, ",")
	}
	inputs = pickString(inputs, lcfg.Input, gcfg.Input)
	if inputs == "" {
		return fmt.Errorf("no input: pass files, --input or \"-\" for stdin")
	}

	cfg := engine.Config{
		Root:       abs,
		Inputs:     inputs,
		MinOverlap: pickInt(flagMinOverlap, lcfg.MinOverlap, gcfg.MinOverlap),
		Threads:    pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		NoCache:    pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
		Strict:     pickBool(flagStrict, lcfg.Strict, gcfg.Strict),
	}
	if cfg.MinOverlap == 0 {
		cfg.MinOverlap = matcher.DefaultMinOverlap
	}
	if inputs == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		cfg.Data = data
	}
	out := cmd.OutOrStdout()
	noColor := colorless(pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor), out)
	asJSON := flagJSON || pickString("", lcfg.Format, gcfg.Format) == "json"

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagTimeout)
		defer cancel()
	}

	res, runErr := engine.Run(ctx, cfg)
	if runErr != nil && res.Total == 0 {
		return runErr
	}

	if asJSON {
		doc := report.NewDocument(res.Result, report.Meta{
			Files:       res.Files,
			InputHash:   res.InputHash,
			Cached:      res.Cached,
			DurationMS:  res.Duration.Milliseconds(),
			WithBeacons: flagBeacons,
		})
		if err := report.WriteJSON(out, doc); err != nil {
			return err
		}
	} else {
		report.PrintTable(out, res.Result, report.PrintOptions{
			NoColor:  noColor,
			Cached:   res.Cached,
			Duration: res.Duration,
			Files:    len(res.Files),
		})
		if flagBeacons {
			fmt.Fprintln(out)
			report.PrintBeacons(out, res.Beacons)
		}
	}

	if err := cache.SaveResults(abs, res.Files, res.Result); err != nil {
		logging.Log.WithError(err).Debug("last run not saved")
	}
	if !flagNoAudit {
		rec := audit.CreateRunRecord(abs, res.Files, res.InputHash, res.Result, cfg.MinOverlap, res.Cached, res.Duration)
		if err := audit.NewAuditLog(abs).LogRun(rec); err != nil {
			logging.Log.WithError(err).Debug("audit record not written")
		}
	}
	return runErr
}
