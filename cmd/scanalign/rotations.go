package scanalign

import (
	"encoding/json"

	"github.com/scanalign/scanalign/internal/geom"
	"github.com/scanalign/scanalign/internal/report"
	"github.com/scanalign/scanalign/internal/rotation"
	"github.com/spf13/cobra"
)

type rotationJSON struct {
	Index  int         `json:"index"`
	Name   string      `json:"name"`
	Matrix geom.Matrix `json:"matrix"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "rotations",
		Short: "List the 24 axis-aligned rotations in matching order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !flagJSON {
				report.PrintRotations(out, colorless(flagNoColor, out))
				return nil
			}
			rows := make([]rotationJSON, rotation.Count)
			for i, m := range rotation.All() {
				rows[i] = rotationJSON{Index: i, Name: rotation.Name(i), Matrix: m}
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		},
	}
	rootCmd.AddCommand(cmd)
}
