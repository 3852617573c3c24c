package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// Index deduplicates points within a tolerance. Points are stored in a k-d
// tree over (X, Z) so lookups stay logarithmic as patterns grow; the tree
// answers exact nearest-neighbour queries, so no boundary fallback is needed.
//
// The zero value is not usable, use NewIndex.
type Index struct {
	eps    float64
	tree   *kdtree.Tree
	points []Point
}

// NewIndex returns an empty index merging points closer than eps.
func NewIndex(eps float64) *Index {
	return &Index{eps: eps, tree: &kdtree.Tree{}}
}

// indexed is a point stored in the tree along with its insertion order.
type indexed struct {
	p   Point
	idx int
}

var _ kdtree.Comparable = indexed{}

func (a indexed) coord(d kdtree.Dim) float64 {
	if d == 0 {
		return a.p.X
	}
	return a.p.Z
}

func (a indexed) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return a.coord(d) - c.(indexed).coord(d)
}

func (a indexed) Dims() int { return 2 }

// Distance returns the squared planar distance, as kdtree expects.
func (a indexed) Distance(c kdtree.Comparable) float64 {
	b := c.(indexed)
	dx, dz := a.p.X-b.p.X, a.p.Z-b.p.Z
	return dx*dx + dz*dz
}

// Lookup returns the index of the stored point nearest to p if it lies within
// the tolerance.
func (ix *Index) Lookup(p Point) (int, bool) {
	if len(ix.points) == 0 {
		return -1, false
	}
	got, d2 := ix.tree.Nearest(indexed{p: p})
	if got == nil || math.Sqrt(d2) >= ix.eps {
		return -1, false
	}
	return got.(indexed).idx, true
}

// Insert adds p unless an equivalent point is already stored, returning the
// index of the stored point and whether it was newly added.
func (ix *Index) Insert(p Point) (int, bool) {
	if i, ok := ix.Lookup(p); ok {
		return i, false
	}
	i := len(ix.points)
	ix.points = append(ix.points, p)
	ix.tree.Insert(indexed{p: p, idx: i}, false /* bounded */)
	return i, true
}

// Points returns the stored points in insertion order.
func (ix *Index) Points() []Point {
	out := make([]Point, len(ix.points))
	copy(out, ix.points)
	return out
}

func (ix *Index) Len() int { return len(ix.points) }
