package core

import (
	"encoding/json"
	"io"

	"github.com/scanalign/scanalign/internal/report"
)

type Document = report.Document

// MarshalResult pretty-prints a result, beacons included, as JSON.
func MarshalResult(w io.Writer, res Result) error {
	return report.WriteJSON(w, report.NewDocument(res.Result, report.Meta{
		Files:       res.Files,
		InputHash:   res.InputHash,
		Cached:      res.Cached,
		DurationMS:  res.Duration.Milliseconds(),
		WithBeacons: true,
	}))
}

// UnmarshalResult decodes a document written by MarshalResult.
func UnmarshalResult(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
