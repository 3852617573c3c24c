// Package mesh turns pattern faces into geometry renderers and exporters can
// consume directly: triangles, areas and bounds in the X/Z plane.
package mesh

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/rclancey/earcut"

	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/pattern"
)

// Triangle is three corners in the X/Z plane.
type Triangle [3]geom.Point

// Area returns the unsigned area of t.
func (t Triangle) Area() float64 {
	return math.Abs(geom.Cross(t[1].Sub(t[0]), t[2].Sub(t[0]))) / 2
}

// Polygon triangulates a simple polygon using the earcut algorithm.
func Polygon(points []geom.Point) ([]Triangle, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: polygon has %d vertices", pattern.ErrDegenerateGeometry, len(points))
	}

	// earcut wants a flat [x0, z0, x1, z1, ...] array.
	coords := make([]float64, len(points)*2)
	for i, p := range points {
		coords[i*2] = p.X
		coords[i*2+1] = p.Z
	}

	indices, err := earcut.Earcut(coords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d-vertex polygon: %w", len(points), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("triangulating %d-vertex polygon: %d indices", len(points), len(indices))
	}

	tris := make([]Triangle, len(indices)/3)
	for i := range tris {
		tris[i] = Triangle{points[indices[i*3]], points[indices[i*3+1]], points[indices[i*3+2]]}
	}
	return tris, nil
}

// Face triangulates face i of p.
func Face(p *pattern.Pattern, i int) ([]Triangle, error) {
	return Polygon(p.FacePoints(i))
}

// Triangulate triangulates every face of p, in face order.
func Triangulate(p *pattern.Pattern) ([][]Triangle, error) {
	out := make([][]Triangle, len(p.Faces))
	for i := range p.Faces {
		tris, err := Face(p, i)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		out[i] = tris
	}
	return out, nil
}

// Ring returns face i of p as a closed orb ring.
func Ring(p *pattern.Pattern, i int) orb.Ring {
	pts := p.FacePoints(i)
	ring := make(orb.Ring, 0, len(pts)+1)
	for _, v := range pts {
		ring = append(ring, orb.Point{v.X, v.Z})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

// FaceArea returns the unsigned area of face i of p.
func FaceArea(p *pattern.Pattern, i int) float64 {
	return math.Abs(planar.Area(Ring(p, i)))
}

// Orientation returns the winding of face i of p. Generated faces are
// counter-clockwise.
func Orientation(p *pattern.Pattern, i int) orb.Orientation {
	return Ring(p, i).Orientation()
}

// Bounds returns the bounding box of every fold line in p, which covers the
// faces along with the tabs and slits outside them.
func Bounds(p *pattern.Pattern) orb.Bound {
	mp := make(orb.MultiPoint, 0, len(p.Vertices)+2*len(p.Folds))
	for _, v := range p.Vertices {
		mp = append(mp, orb.Point{v.X, v.Z})
	}
	for _, f := range p.Folds {
		mp = append(mp, orb.Point{f.Start.X, f.Start.Z}, orb.Point{f.End.X, f.End.Z})
	}
	return mp.Bound()
}
