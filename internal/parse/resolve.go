package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// SplitPatterns splits a comma-separated pattern list, dropping blanks.
func SplitPatterns(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Resolve expands patterns relative to root into file paths. A pattern that
// names an existing file is used as is; anything else is matched as a
// doublestar glob. Matches of one pattern are sorted, patterns keep their
// order, and a file matched twice is listed once.
func Resolve(root string, patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	fsys := os.DirFS(root)
	for _, pat := range patterns {
		direct := pat
		if !filepath.IsAbs(direct) {
			direct = filepath.Join(root, pat)
		}
		if st, err := os.Stat(direct); err == nil && !st.IsDir() {
			add(direct)
			continue
		}
		matches, err := doublestar.Glob(fsys, filepath.ToSlash(pat), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pat, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no input matches %q", pat)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(filepath.Join(root, filepath.FromSlash(m)))
		}
	}
	return out, nil
}
