package report

import (
	"encoding/json"
	"io"

	"github.com/scanalign/scanalign/internal/align"
	"github.com/scanalign/scanalign/internal/geom"
	"github.com/scanalign/scanalign/internal/types"
)

// Document is the machine-readable form of a registration.
type Document struct {
	Converged    bool          `json:"converged"`
	Scans        int           `json:"scans"`
	BeaconCount  int           `json:"beacon_count"`
	MaxDistance  int           `json:"max_distance"`
	Frames       []types.Frame `json:"scanners"`
	Unregistered []int         `json:"unregistered"`
	Beacons      []geom.Point  `json:"beacons,omitempty"`
	Files        []string      `json:"files,omitempty"`
	InputHash    string        `json:"input_hash,omitempty"`
	Cached       bool          `json:"cached"`
	DurationMS   int64         `json:"duration_ms"`
}

// Meta carries the run details that are not part of the registration itself.
type Meta struct {
	Files       []string
	InputHash   string
	Cached      bool
	DurationMS  int64
	WithBeacons bool
}

// NewDocument builds the JSON document for res.
func NewDocument(res align.Result, meta Meta) Document {
	doc := Document{
		Converged:    res.Converged(),
		Scans:        res.Total,
		BeaconCount:  len(res.Beacons),
		MaxDistance:  res.MaxDistance(),
		Frames:       res.Frames,
		Unregistered: res.Unregistered,
		Files:        meta.Files,
		InputHash:    meta.InputHash,
		Cached:       meta.Cached,
		DurationMS:   meta.DurationMS,
	}
	if doc.Frames == nil {
		doc.Frames = []types.Frame{}
	}
	if doc.Unregistered == nil {
		doc.Unregistered = []int{}
	}
	if meta.WithBeacons {
		doc.Beacons = res.Beacons
	}
	return doc
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
