package scanalign

import (
	"errors"
	"fmt"
	"os"

	"github.com/scanalign/scanalign/internal/align"
	"github.com/scanalign/scanalign/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagThreads int
	flagNoColor bool
	flagNoCache bool
	flagVerbose bool
	flagStrict  bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the scanalign CLI.
var rootCmd = &cobra.Command{
	Use:     "scanalign",
	Short:   "Register overlapping 3D scanner reports into one frame",
	Long:    "scanalign reads beacon reports from scanners with unknown position and orientation, registers them against each other and reports the merged beacon map and scanner positions.",
	Version: version,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Configure(flagVerbose, flagNoColor)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the scanalign CLI. It should be called by the main package.
// Exit status is 1 when --strict registration leaves scans unregistered and
// 2 for any other error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, align.ErrNonConvergence) {
		return 1
	}
	return 2
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable the registration cache")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log registration progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "exit 1 when some scans cannot be registered")
}
