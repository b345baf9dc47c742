package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/scanalign/scanalign/internal/align"
)

// RunRecord is one line of the audit log.
type RunRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	RunID        string    `json:"run_id"`
	Root         string    `json:"root"`
	Files        []string  `json:"files,omitempty"`
	InputHash    string    `json:"input_hash,omitempty"`
	Scans        int       `json:"scans"`
	Registered   int       `json:"registered"`
	Unregistered []int     `json:"unregistered,omitempty"`
	Beacons      int       `json:"beacons"`
	MaxDistance  int       `json:"max_distance"`
	MinOverlap   int       `json:"min_overlap"`
	Cached       bool      `json:"cached"`
	Duration     string    `json:"duration"`
}

type AuditLog struct {
	logPath string
}

func NewAuditLog(root string) *AuditLog {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".scanalign_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "scanalign_audit.jsonl")
	}
	return &AuditLog{logPath: logPath}
}

// Path is the file the log is appended to.
func (a *AuditLog) Path() string { return a.logPath }

// logLine is one line of the log file. rec is nil when the line does not
// decode as a RunRecord.
type logLine struct {
	raw []byte
	rec *RunRecord
}

func (a *AuditLog) readLines() ([]logLine, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var lines []logLine
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for sc.Scan() {
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		line := logLine{raw: append([]byte(nil), raw...)}
		var record RunRecord
		if err := json.Unmarshal(raw, &record); err == nil {
			line.rec = &record
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}
	return lines, nil
}

// LoadHistory returns the recorded runs, newest first. Lines that fail to
// decode are skipped.
func (a *AuditLog) LoadHistory() ([]RunRecord, error) {
	lines, err := a.readLines()
	if err != nil {
		return nil, err
	}
	var records []RunRecord
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].rec != nil {
			records = append(records, *lines[i].rec)
		}
	}
	return records, nil
}

func (a *AuditLog) LogRun(record RunRecord) error {
	if record.RunID == "" {
		record.RunID = uuid.NewString()
	}

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// DeleteRecord removes the index-th record in LoadHistory order. Lines that
// do not decode are written back unchanged.
func (a *AuditLog) DeleteRecord(index int) error {
	lines, err := a.readLines()
	if err != nil {
		return err
	}

	target := -1
	for i, n := len(lines)-1, 0; i >= 0; i-- {
		if lines[i].rec == nil {
			continue
		}
		if n == index {
			target = i
			break
		}
		n++
	}
	if index < 0 || target < 0 {
		return fmt.Errorf("invalid index: %d", index)
	}

	var buf bytes.Buffer
	for i, line := range lines {
		if i == target {
			continue
		}
		buf.Write(line.raw)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(a.logPath, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// CreateRunRecord summarises a registration for the log.
func CreateRunRecord(
	root string,
	files []string,
	inputHash string,
	res align.Result,
	minOverlap int,
	cached bool,
	duration time.Duration,
) RunRecord {
	return RunRecord{
		Timestamp:    time.Now(),
		RunID:        uuid.NewString(),
		Root:         root,
		Files:        files,
		InputHash:    inputHash,
		Scans:        res.Total,
		Registered:   len(res.Frames),
		Unregistered: res.Unregistered,
		Beacons:      len(res.Beacons),
		MaxDistance:  res.MaxDistance(),
		MinOverlap:   minOverlap,
		Cached:       cached,
		Duration:     duration.String(),
	}
}
