package scanalign

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/scanalign/scanalign/internal/audit"
	"github.com/scanalign/scanalign/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagHistoryPath   string
	flagHistoryLimit  int
	flagHistoryDelete int
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previous registration runs from the audit log",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagHistoryPath, "path", "p", ".", "root directory holding the audit log")
	cmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "show at most this many runs (0 = all)")
	cmd.Flags().IntVar(&flagHistoryDelete, "delete", -1, "delete the run with this index instead of listing")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagHistoryPath)
	log := audit.NewAuditLog(abs)
	out := cmd.OutOrStdout()

	if flagHistoryDelete >= 0 {
		if err := log.DeleteRecord(flagHistoryDelete); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted run %d\n", flagHistoryDelete)
		return nil
	}

	records, err := log.LoadHistory()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if flagJSON {
		if records == nil {
			records = []audit.RunRecord{}
		}
		if flagHistoryLimit > 0 && len(records) > flagHistoryLimit {
			records = records[:flagHistoryLimit]
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	report.PrintHistory(out, records, flagHistoryLimit, colorless(flagNoColor, out))
	return nil
}
