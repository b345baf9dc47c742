package geom

import (
	"fmt"
	"sort"
)

// Point is an integer coordinate triple. It is comparable and can be used
// directly as a map key.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point) Neg() Point        { return Point{-p.X, -p.Y, -p.Z} }

// Manhattan returns |dx| + |dy| + |dz| between p and q.
func (p Point) Manhattan(q Point) int {
	d := p.Sub(q)
	return abs(d.X) + abs(d.Y) + abs(d.Z)
}

// Less orders points by X, then Y, then Z.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

func (p Point) String() string { return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Set is an exact-match point set.
type Set map[Point]struct{}

// NewSet builds a set from the given points; duplicates collapse.
func NewSet(pts ...Point) Set {
	s := make(Set, len(pts))
	s.Add(pts...)
	return s
}

func (s Set) Add(pts ...Point) {
	for _, p := range pts {
		s[p] = struct{}{}
	}
}

func (s Set) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the members in Less order.
func (s Set) Sorted() []Point {
	out := make([]Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	SortPoints(out)
	return out
}

// SortPoints sorts pts in place in Less order.
func SortPoints(pts []Point) {
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
}
