package files

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// StatePatterns are the files scanalign writes next to its inputs when the
// root is not a git checkout.
func StatePatterns() []string {
	return []string{
		".scanalign_cache.json",
		".scanalign_last_run.json",
		".scanalign_audit.jsonl",
	}
}

// EnsureIgnored adds each pattern missing from root/.gitignore, creating
// the file if needed, and returns the patterns it added. Idempotent.
func EnsureIgnored(root string, patterns ...string) ([]string, error) {
	path := filepath.Join(root, ".gitignore")
	existing := map[string]bool{}
	endsWithNewline := true
	if b, err := os.ReadFile(path); err == nil {
		sc := bufio.NewScanner(strings.NewReader(string(b)))
		for sc.Scan() {
			existing[strings.TrimSpace(sc.Text())] = true
		}
		endsWithNewline = len(b) == 0 || b[len(b)-1] == '\n'
	}

	var added []string
	for _, p := range patterns {
		if p == "" || existing[p] {
			continue
		}
		existing[p] = true
		added = append(added, p)
	}
	if len(added) == 0 {
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var sb strings.Builder
	if !endsWithNewline {
		sb.WriteByte('\n')
	}
	for _, p := range added {
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	if _, err := f.WriteString(sb.String()); err != nil {
		return nil, err
	}
	return added, nil
}
