// Package pattern defines fold patterns and the primitives they are drawn
// with: classified fold lines, locking tabs, and receiving slits.
//
// A Pattern is produced once per generation call and is never modified
// afterwards; changing a parameter always produces a new Pattern. Consumers
// (validators, renderers, exporters) treat it as read-only.
package pattern

import (
	"errors"
	"fmt"

	"github.com/irfansharif/foldlock/internal/geom"
)

var (
	// ErrInvalidDimension is returned for non-positive dimensions or ratios.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrDegenerateGeometry is returned when an edge has zero length.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrUnknownShape is returned for shape values outside the enumeration.
	ErrUnknownShape = errors.New("unknown shape")
)

// FoldType classifies a line in the pattern.
type FoldType int

const (
	Mountain FoldType = iota // crease folding away from the viewer
	Valley                   // crease folding towards the viewer
	Cut                      // boundary severed during fabrication
)

func (t FoldType) String() string {
	switch t {
	case Mountain:
		return "mountain"
	case Valley:
		return "valley"
	case Cut:
		return "cut"
	default:
		return fmt.Sprintf("FoldType(%d)", int(t))
	}
}

// Short returns the single-letter code used in fold sequences (M, V, C).
func (t FoldType) Short() string {
	switch t {
	case Mountain:
		return "M"
	case Valley:
		return "V"
	case Cut:
		return "C"
	default:
		return "?"
	}
}

// IsCrease reports whether the line is folded rather than cut.
func (t FoldType) IsCrease() bool { return t == Mountain || t == Valley }

// Opposite reports whether t and u are opposite crease types.
func (t FoldType) Opposite(u FoldType) bool {
	return (t == Mountain && u == Valley) || (t == Valley && u == Mountain)
}

func (t FoldType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// FoldLine is a crease or cut between two points.
type FoldLine struct {
	Start geom.Point
	End   geom.Point
	Type  FoldType
}

// MakeFold returns a fold line between start and end. The endpoints are
// copied by value, so later changes to the caller's points never reach the
// pattern.
func MakeFold(start, end geom.Point, typ FoldType) FoldLine {
	return FoldLine{Start: start, End: end, Type: typ}
}

// Len returns the length of the line.
func (f FoldLine) Len() float64 { return geom.Dist(f.Start, f.End) }

// Touches reports whether either endpoint lies within eps of p.
func (f FoldLine) Touches(p geom.Point, eps float64) bool {
	return geom.Near(f.Start, p, eps) || geom.Near(f.End, p, eps)
}

// Far returns the endpoint further from p.
func (f FoldLine) Far(p geom.Point) geom.Point {
	if geom.Dist(f.Start, p) < geom.Dist(f.End, p) {
		return f.End
	}
	return f.Start
}

// Pattern is a complete unfolding: vertices, classified fold lines, and faces
// (vertex index lists wound counter-clockwise in the X/Z plane).
type Pattern struct {
	Name     string
	Vertices []geom.Point
	Folds    []FoldLine
	Faces    [][]int
}

// Check verifies that every face references distinct vertices inside the
// pattern and has at least three of them.
func (p *Pattern) Check() error {
	for fi, face := range p.Faces {
		if len(face) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrDegenerateGeometry, fi, len(face))
		}
		seen := make(map[int]bool, len(face))
		for _, vi := range face {
			if vi < 0 || vi >= len(p.Vertices) {
				return fmt.Errorf("face %d references vertex %d, pattern has %d", fi, vi, len(p.Vertices))
			}
			if seen[vi] {
				return fmt.Errorf("%w: face %d repeats vertex %d", ErrDegenerateGeometry, fi, vi)
			}
			seen[vi] = true
		}
	}
	return nil
}

// FacePoints returns the corners of face i.
func (p *Pattern) FacePoints(i int) []geom.Point {
	face := p.Faces[i]
	pts := make([]geom.Point, len(face))
	for k, vi := range face {
		pts[k] = p.Vertices[vi]
	}
	return pts
}

// Count returns the number of fold lines of the given type.
func (p *Pattern) Count(typ FoldType) int {
	n := 0
	for _, f := range p.Folds {
		if f.Type == typ {
			n++
		}
	}
	return n
}

// Equal reports whether a and b have the same structure and coordinates
// within eps.
func Equal(a, b *Pattern, eps float64) bool {
	if a.Name != b.Name || len(a.Vertices) != len(b.Vertices) ||
		len(a.Folds) != len(b.Folds) || len(a.Faces) != len(b.Faces) {
		return false
	}
	for i := range a.Vertices {
		if !geom.Near(a.Vertices[i], b.Vertices[i], eps) {
			return false
		}
	}
	for i := range a.Folds {
		fa, fb := a.Folds[i], b.Folds[i]
		if fa.Type != fb.Type || !geom.Near(fa.Start, fb.Start, eps) || !geom.Near(fa.End, fb.End, eps) {
			return false
		}
	}
	for i := range a.Faces {
		if len(a.Faces[i]) != len(b.Faces[i]) {
			return false
		}
		for k := range a.Faces[i] {
			if a.Faces[i][k] != b.Faces[i][k] {
				return false
			}
		}
	}
	return true
}
