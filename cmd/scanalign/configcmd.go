package scanalign

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scanalign/scanalign/internal/config"
	"github.com/scanalign/scanalign/internal/files"
	"github.com/scanalign/scanalign/internal/matcher"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput string
	cfgGlobal bool
	cfgForce  bool
	cfgIgnore bool
	cfgPath   string
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .scanalign.yml",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&cfgOutput, "output", ".scanalign.yml", "output file path")
	initCmd.Flags().BoolVar(&cfgGlobal, "global", false, "write the per-user config instead")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
	initCmd.Flags().BoolVar(&cfgIgnore, "gitignore", false, "add scanalign's state files to .gitignore next to the config")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective file configuration (local over global)",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	cfgCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&cfgPath, "path", "p", ".", "directory to look for a local config in")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	out := cfgOutput
	if cfgGlobal {
		p, err := config.GlobalPath()
		if err != nil {
			return err
		}
		out = p
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
	}
	if _, err := os.Stat(out); err == nil && !cfgForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", out)
	}
	if err := os.WriteFile(out, []byte(config.Template), 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", out)
	if cfgIgnore && !cfgGlobal {
		added, err := files.EnsureIgnored(filepath.Dir(out), files.StatePatterns()...)
		if err != nil {
			return err
		}
		if len(added) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Added to .gitignore:", strings.Join(added, ", "))
		}
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	gcfg, lcfg, err := loadConfigs(cfgPath)
	if err != nil {
		return err
	}
	minOverlap := pickInt(0, lcfg.MinOverlap, gcfg.MinOverlap)
	if minOverlap == 0 {
		minOverlap = matcher.DefaultMinOverlap
	}
	format := pickString("", lcfg.Format, gcfg.Format)
	if format == "" {
		format = "table"
	}
	eff := config.FileConfig{
		MinOverlap: intPtr(minOverlap),
		Threads:    intPtr(pickInt(0, lcfg.Threads, gcfg.Threads)),
		Strict:     boolPtr(pickBool(false, lcfg.Strict, gcfg.Strict)),
		NoCache:    boolPtr(pickBool(false, lcfg.NoCache, gcfg.NoCache)),
		NoColor:    boolPtr(pickBool(false, lcfg.NoColor, gcfg.NoColor)),
		Format:     strPtr(format),
		Input:      optStrPtr(pickString("", lcfg.Input, gcfg.Input)),
	}
	b, err := yaml.Marshal(&eff)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

func strPtr(s string) *string { return &s }
func optStrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
