package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/scanalign/scanalign/internal/align"
)

// LastRun is the most recent registration, kept for `scanalign show`.
type LastRun struct {
	Result    align.Result `json:"result"`
	Files     []string     `json:"files,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
	Root      string       `json:"root"`
}

func resultsPath(root string) string {
	// Store in .git directory or repo root
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "scanalign_last_run.json")
	}
	return filepath.Join(root, ".scanalign_last_run.json")
}

// SaveResults records res as the last run under root.
func SaveResults(root string, files []string, res align.Result) error {
	p := resultsPath(root)
	run := LastRun{
		Result:    res,
		Files:     files,
		Timestamp: time.Now(),
		Root:      root,
	}
	b, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0644)
}

// LoadResults loads the last run saved under root.
func LoadResults(root string) (LastRun, error) {
	var run LastRun
	p := resultsPath(root)
	f, err := os.ReadFile(p)
	if err != nil {
		return run, err
	}
	if err := json.Unmarshal(f, &run); err != nil {
		return run, err
	}
	return run, nil
}
