package parse

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/scanalign/scanalign/internal/geom"
	"github.com/scanalign/scanalign/internal/types"
	"github.com/tidwall/gjson"
)

// Error is a malformed-input error. Line is 0 when the position is not a
// line (JSON input), in which case Path names the offending element.
type Error struct {
	File string
	Line int
	Path string
	Msg  string
}

func (e *Error) Error() string {
	loc := e.File
	if loc == "" {
		loc = "<input>"
	}
	switch {
	case e.Line > 0:
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	case e.Path != "":
		loc = loc + ": " + e.Path
	}
	return loc + ": " + e.Msg
}

// Bytes parses data, choosing the format from the file extension and
// falling back to sniffing the first non-space byte.
func Bytes(name string, data []byte) ([]types.Scan, error) {
	if isJSON(name, data) {
		return JSON(name, data)
	}
	return Text(name, bytes.NewReader(data))
}

func isJSON(name string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return true
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// Text reads the header-delimited text format.
func Text(name string, r io.Reader) ([]types.Scan, error) {
	var scans []types.Scan
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "---") {
			label := strings.TrimSpace(strings.Trim(line, "-"))
			scans = append(scans, types.Scan{ID: len(scans), Name: label})
			continue
		}
		if len(scans) == 0 {
			return nil, &Error{File: name, Line: lineNo, Msg: "beacon before any scanner header"}
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, &Error{File: name, Line: lineNo, Msg: err.Error()}
		}
		cur := &scans[len(scans)-1]
		cur.Points = append(cur.Points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return scans, nil
}

func parsePoint(line string) (geom.Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return geom.Point{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	var v [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return geom.Point{}, fmt.Errorf("coordinate %d: %q is not an integer", i+1, strings.TrimSpace(f))
		}
		v[i] = n
	}
	return geom.Point{X: v[0], Y: v[1], Z: v[2]}, nil
}

// JSON reads the JSON format.
func JSON(name string, data []byte) ([]types.Scan, error) {
	if !gjson.Valid(string(data)) {
		return nil, &Error{File: name, Msg: "invalid JSON"}
	}
	root := gjson.ParseBytes(data)
	list := root
	path := ""
	if root.IsObject() {
		list = root.Get("scanners")
		path = "scanners"
	}
	if !list.IsArray() {
		return nil, &Error{File: name, Path: path, Msg: "expected an array of scanners"}
	}

	var scans []types.Scan
	for i, item := range list.Array() {
		itemPath := joinPath(path, strconv.Itoa(i))
		scan := types.Scan{ID: i}
		beacons := item
		beaconsPath := itemPath
		if item.IsObject() {
			scan.Name = item.Get("name").String()
			beacons = item.Get("beacons")
			beaconsPath = joinPath(itemPath, "beacons")
		}
		if !beacons.IsArray() {
			return nil, &Error{File: name, Path: beaconsPath, Msg: "expected an array of beacons"}
		}
		for j, b := range beacons.Array() {
			p, err := jsonPoint(b)
			if err != nil {
				return nil, &Error{File: name, Path: joinPath(beaconsPath, strconv.Itoa(j)), Msg: err.Error()}
			}
			scan.Points = append(scan.Points, p)
		}
		scans = append(scans, scan)
	}
	return scans, nil
}

func jsonPoint(b gjson.Result) (geom.Point, error) {
	if !b.IsArray() {
		return geom.Point{}, fmt.Errorf("expected [x,y,z]")
	}
	coords := b.Array()
	if len(coords) != 3 {
		return geom.Point{}, fmt.Errorf("expected 3 coordinates, got %d", len(coords))
	}
	var v [3]int
	for i, c := range coords {
		if c.Type != gjson.Number || c.Num != float64(c.Int()) {
			return geom.Point{}, fmt.Errorf("coordinate %d: %s is not an integer", i+1, c.Raw)
		}
		v[i] = int(c.Int())
	}
	return geom.Point{X: v[0], Y: v[1], Z: v[2]}, nil
}

func joinPath(base, elem string) string {
	if base == "" {
		return elem
	}
	return base + "." + elem
}

// Renumber assigns sequential IDs across scans concatenated from several
// inputs, keeping their relative order.
func Renumber(scans []types.Scan) []types.Scan {
	for i := range scans {
		scans[i].ID = i
	}
	return scans
}
