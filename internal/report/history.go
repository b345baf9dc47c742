package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/scanalign/scanalign/internal/audit"
)

// PrintHistory lists audit records, newest first, at most limit rows
// (all when limit <= 0).
func PrintHistory(w io.Writer, records []audit.RunRecord, limit int, noColor bool) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No runs recorded")
		return
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	table := tablewriter.NewWriter(w)
	table.Header("#", "WHEN", "SCANS", "REGISTERED", "BEACONS", "MAX DISTANCE", "STATUS")
	for i, r := range records {
		status := paint(okStyle, "ok", noColor)
		if len(r.Unregistered) > 0 {
			status = paint(warnStyle, "partial", noColor)
		}
		if r.Cached {
			status += " (cached)"
		}
		_ = table.Append([]string{
			strconv.Itoa(i),
			r.Timestamp.Format("2006-01-02 15:04:05"),
			strconv.Itoa(r.Scans),
			strconv.Itoa(r.Registered),
			strconv.Itoa(r.Beacons),
			strconv.Itoa(r.MaxDistance),
			status,
		})
	}
	_ = table.Render()
}
