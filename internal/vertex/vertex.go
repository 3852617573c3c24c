// Package vertex recovers vertex structure from a set of fold lines: the
// unique endpoints, the lines incident to each, and the angle-sorted crease
// star every flat-foldability check runs on.
//
// Vertices are derived on demand and never cached; patterns are immutable, so
// recomputing is always consistent.
package vertex

import (
	"math"
	"sort"

	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/pattern"
)

// Vertex is a unique point and the fold lines touching it.
type Vertex struct {
	Index int
	Point geom.Point
	Lines []pattern.FoldLine
}

// Degree returns the number of lines touching the vertex, cuts included.
func (v Vertex) Degree() int { return len(v.Lines) }

// Counts returns the number of mountain, valley and cut lines at v.
func (v Vertex) Counts() (mountains, valleys, cuts int) {
	for _, l := range v.Lines {
		switch l.Type {
		case pattern.Mountain:
			mountains++
		case pattern.Valley:
			valleys++
		case pattern.Cut:
			cuts++
		}
	}
	return mountains, valleys, cuts
}

// Creases returns the number of mountain and valley lines at v.
func (v Vertex) Creases() int {
	m, vv, _ := v.Counts()
	return m + vv
}

// Interior reports whether four or more creases meet at v. Every other vertex
// lies on the sheet's perimeter and is exempt from the flat-foldability
// theorems.
func (v Vertex) Interior() bool { return v.Creases() >= 4 }

// Ray is one crease leaving a vertex.
type Ray struct {
	Type  pattern.FoldType
	Angle float64 // direction in (-π, π]
}

// Star returns the creases at v sorted counter-clockwise by direction, cuts
// excluded. Each direction points from v to the crease's far endpoint.
func (v Vertex) Star() []Ray {
	var rays []Ray
	for _, l := range v.Lines {
		if !l.Type.IsCrease() {
			continue
		}
		rays = append(rays, Ray{Type: l.Type, Angle: l.Far(v.Point).Sub(v.Point).Angle()})
	}
	sort.SliceStable(rays, func(i, j int) bool { return rays[i].Angle < rays[j].Angle })
	return rays
}

// Sectors returns the angle from each ray of a sorted star to the next,
// wrapping around; they sum to 2π.
func Sectors(star []Ray) []float64 {
	n := len(star)
	sectors := make([]float64, n)
	for i := range star {
		next := star[(i+1)%n].Angle
		if i == n-1 {
			next += 2 * math.Pi
		}
		sectors[i] = next - star[i].Angle
	}
	return sectors
}

// Extract returns the unique endpoints of folds in discovery order, merging
// points within geom.VertexEpsilon. The order is deterministic for a given
// fold order.
func Extract(folds []pattern.FoldLine) []geom.Point {
	ix := geom.NewIndex(geom.VertexEpsilon)
	for _, f := range folds {
		ix.Insert(f.Start)
		ix.Insert(f.End)
	}
	return ix.Points()
}

// Connected returns every fold with an endpoint within geom.VertexEpsilon of
// p, in fold order.
func Connected(p geom.Point, folds []pattern.FoldLine) []pattern.FoldLine {
	var out []pattern.FoldLine
	for _, f := range folds {
		if f.Touches(p, geom.VertexEpsilon) {
			out = append(out, f)
		}
	}
	return out
}

// Analyze returns every vertex of folds along with its incident lines. Lines
// are bucketed through the same index Extract uses, so each fold is attached
// to exactly the vertices its endpoints were merged into.
func Analyze(folds []pattern.FoldLine) []Vertex {
	ix := geom.NewIndex(geom.VertexEpsilon)
	type ends struct{ a, b int }
	incident := make([]ends, len(folds))
	for i, f := range folds {
		a, _ := ix.Insert(f.Start)
		b, _ := ix.Insert(f.End)
		incident[i] = ends{a, b}
	}

	points := ix.Points()
	vertices := make([]Vertex, len(points))
	for i, p := range points {
		vertices[i] = Vertex{Index: i, Point: p}
	}
	for i, f := range folds {
		e := incident[i]
		vertices[e.a].Lines = append(vertices[e.a].Lines, f)
		if e.b != e.a {
			vertices[e.b].Lines = append(vertices[e.b].Lines, f)
		}
	}
	return vertices
}
