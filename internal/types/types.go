package types

import (
	"strconv"

	"github.com/scanalign/scanalign/internal/geom"
)

// Scan is one scanner's report: beacon positions in the scanner's own frame.
// ID is the scan's position in the input ordering; scan 0 is the reference.
type Scan struct {
	ID     int          `json:"id"`
	Name   string       `json:"name,omitempty"`
	Points []geom.Point `json:"points"`
}

// Label returns Name, or a generated label when the input had none.
func (s Scan) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return "scanner " + strconv.Itoa(s.ID)
}

// Frame records how a scan was registered into the reference frame. Once a
// frame exists for a scan it is never recomputed.
type Frame struct {
	ScanID int    `json:"scan_id"`
	Name   string `json:"name,omitempty"`
	// Transform maps the scan's local points into the reference frame.
	Transform geom.Transform `json:"transform"`
	// Offset is the scan origin expressed in the reference frame.
	Offset geom.Point `json:"offset"`
	// AnchorID is the registered scan this one was matched against; -1 for
	// the reference scan.
	AnchorID      int `json:"anchor_id"`
	RotationIndex int `json:"rotation_index"`
	Overlap       int `json:"overlap"`
}
