package scanalign

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/scanalign/scanalign/internal/config"
	"golang.org/x/term"
)

// colorless reports whether w should get plain text: either colour was
// turned off or w is not a terminal.
func colorless(noColor bool, w io.Writer) bool {
	if noColor {
		return true
	}
	f, ok := w.(*os.File)
	return !ok || !term.IsTerminal(int(f.Fd()))
}

// loadConfigs returns the global and local file configs for root. Missing
// files leave the corresponding config empty.
func loadConfigs(root string) (gcfg, lcfg config.FileConfig, err error) {
	gcfg, err = config.LoadGlobal()
	if errors.Is(err, config.ErrNoConfig) {
		err = nil
	}
	if err != nil {
		return gcfg, lcfg, err
	}
	abs, _ := filepath.Abs(root)
	lcfg, err = config.LoadLocal(abs)
	if errors.Is(err, config.ErrNoConfig) {
		err = nil
	}
	return gcfg, lcfg, err
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
