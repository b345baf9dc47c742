package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/scanalign/scanalign/internal/align"
	"github.com/scanalign/scanalign/internal/geom"
	"github.com/scanalign/scanalign/internal/rotation"
	"github.com/scanalign/scanalign/internal/types"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

type PrintOptions struct {
	NoColor  bool
	Cached   bool
	Duration time.Duration
	Files    int
}

func paint(s lipgloss.Style, text string, noColor bool) string {
	if noColor {
		return text
	}
	return s.Render(text)
}

// PrintTable writes one row per scanner followed by a summary footer.
// Unregistered scanners are listed with a dash for position.
func PrintTable(w io.Writer, res align.Result, opts PrintOptions) {
	if res.Total == 0 {
		fmt.Fprintln(w, "No scans given")
		return
	}
	table := tablewriter.NewWriter(w)
	table.Header("SCANNER", "NAME", "POSITION", "ROTATION", "ANCHOR", "OVERLAP")
	for _, f := range res.Frames {
		_ = table.Append(frameRow(f))
	}
	for _, id := range res.Unregistered {
		_ = table.Append([]string{strconv.Itoa(id), "", paint(warnStyle, "unregistered", opts.NoColor), "-", "-", "-"})
	}
	_ = table.Render()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Unique beacons: %d\n", len(res.Beacons))
	fmt.Fprintf(w, "Max scanner distance: %d\n", res.MaxDistance())
	offsets := res.Offsets()
	if i, j, d, ok := align.FarthestPair(offsets); ok && d > 0 {
		fmt.Fprintf(w, "Farthest pair: scanner %d and scanner %d\n", res.Frames[i].ScanID, res.Frames[j].ScanID)
	}
	if res.Converged() {
		fmt.Fprintln(w, paint(okStyle, fmt.Sprintf("Registered %d of %d scans", len(res.Frames), res.Total), opts.NoColor))
	} else {
		fmt.Fprintln(w, paint(warnStyle, fmt.Sprintf("Warning: %d of %d scans could not be registered", len(res.Unregistered), res.Total), opts.NoColor))
	}
	if opts.Files > 0 {
		fmt.Fprintf(w, "Files read: %d\n", opts.Files)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.Cached {
		fmt.Fprintln(w, "(cached)")
	}
}

func frameRow(f types.Frame) []string {
	anchor := "-"
	if f.AnchorID >= 0 {
		anchor = strconv.Itoa(f.AnchorID)
	}
	overlap := "-"
	if f.AnchorID >= 0 {
		overlap = strconv.Itoa(f.Overlap)
	}
	return []string{
		strconv.Itoa(f.ScanID),
		f.Name,
		f.Offset.String(),
		fmt.Sprintf("%d (%s)", f.RotationIndex, rotation.Name(f.RotationIndex)),
		anchor,
		overlap,
	}
}

// PrintBeacons writes each beacon on its own line in ascending order.
func PrintBeacons(w io.Writer, beacons []geom.Point) {
	for _, b := range beacons {
		fmt.Fprintln(w, b.String())
	}
}

// PrintRotations lists the rotation table.
func PrintRotations(w io.Writer, noColor bool) {
	fmt.Fprintln(w, paint(titleStyle, fmt.Sprintf("%d proper rotations", rotation.Count), noColor))
	table := tablewriter.NewWriter(w)
	table.Header("INDEX", "NAME", "MATRIX")
	for i := 0; i < rotation.Count; i++ {
		_ = table.Append([]string{strconv.Itoa(i), rotation.Name(i), rotation.At(i).String()})
	}
	_ = table.Render()
}
