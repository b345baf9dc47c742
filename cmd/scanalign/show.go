package scanalign

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/scanalign/scanalign/internal/cache"
	"github.com/scanalign/scanalign/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagShowPath    string
	flagShowBeacons bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the result of the last align run",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagShowPath, "path", "p", ".", "root directory the last run was made in")
	cmd.Flags().BoolVar(&flagShowBeacons, "beacons", false, "also print every unique beacon")
}

func runShow(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagShowPath)
	run, err := cache.LoadResults(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("no previous run under %s", abs)
	}
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flagJSON {
		return report.WriteJSON(out, report.NewDocument(run.Result, report.Meta{Files: run.Files, WithBeacons: flagShowBeacons}))
	}
	fmt.Fprintf(out, "Last run: %s\n\n", run.Timestamp.Format("2006-01-02 15:04:05"))
	report.PrintTable(out, run.Result, report.PrintOptions{NoColor: colorless(flagNoColor, out), Files: len(run.Files)})
	if flagShowBeacons {
		fmt.Fprintln(out)
		report.PrintBeacons(out, run.Result.Beacons)
	}
	return nil
}
