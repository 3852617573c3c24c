package pattern

import (
	"fmt"
	"math"

	"github.com/irfansharif/foldlock/internal/geom"
)

const (
	// TabTaper is the fraction of a tab's base width retained at its tip.
	TabTaper = 0.7
	// DefaultSlitRatio is the fraction of an edge a slit covers.
	DefaultSlitRatio = 0.8
)

// Tab is a trapezoidal locking tab hinged on a base edge.
type Tab struct {
	// Outline is base start, base end, tip end, tip start.
	Outline [4]geom.Point
	// Folds is the mountain base crease followed by the three tip cuts.
	Folds [4]FoldLine
}

// BaseWidth returns the length of the hinge edge.
func (t Tab) BaseWidth() float64 { return geom.Dist(t.Outline[0], t.Outline[1]) }

// TipWidth returns the length of the free edge.
func (t Tab) TipWidth() float64 { return geom.Dist(t.Outline[2], t.Outline[3]) }

// LockingTab builds a tab on the edge baseStart→baseEnd extending depth away
// from it. The tab grows to the right of the directed edge (outside a
// counter-clockwise face) unless inward is set. Its tip is inset symmetrically
// so it keeps TabTaper of the base width.
func LockingTab(baseStart, baseEnd geom.Point, depth float64, inward bool) (Tab, error) {
	edge := baseEnd.Sub(baseStart)
	if degenerate(baseStart, baseEnd) {
		return Tab{}, fmt.Errorf("%w: tab base %v→%v", ErrDegenerateGeometry, baseStart, baseEnd)
	}
	if depth <= 0 {
		return Tab{}, fmt.Errorf("%w: tab depth %g", ErrInvalidDimension, depth)
	}

	normal := edge.RightNormal()
	if inward {
		normal = normal.Scale(-1)
	}
	inset := (1 - TabTaper) / 2
	offset := normal.Scale(depth)
	tipStart := geom.Lerp(baseStart, baseEnd, inset).Add(offset)
	tipEnd := geom.Lerp(baseStart, baseEnd, 1-inset).Add(offset)

	return Tab{
		Outline: [4]geom.Point{baseStart, baseEnd, tipEnd, tipStart},
		Folds: [4]FoldLine{
			MakeFold(baseStart, baseEnd, Mountain),
			MakeFold(baseStart, tipStart, Cut),
			MakeFold(tipStart, tipEnd, Cut),
			MakeFold(tipEnd, baseEnd, Cut),
		},
	}, nil
}

// relativeZero is the edge length, as a fraction of the endpoints' magnitude,
// below which an edge is indistinguishable from a point in float64.
const relativeZero = 1e-12

// degenerate reports whether p→q has no usable length. The check is relative
// so arbitrarily small but positive edges stay valid.
func degenerate(p, q geom.Point) bool {
	scale := math.Max(p.Len(), q.Len())
	return !(geom.Dist(p, q) > relativeZero*scale)
}

// Slit returns a single cut centred on start→end covering ratio of its
// length. It receives a LockingTab.
func Slit(start, end geom.Point, ratio float64) (FoldLine, error) {
	if degenerate(start, end) {
		return FoldLine{}, fmt.Errorf("%w: slit edge %v→%v", ErrDegenerateGeometry, start, end)
	}
	if ratio <= 0 || ratio > 1 {
		return FoldLine{}, fmt.Errorf("%w: slit ratio %g", ErrInvalidDimension, ratio)
	}
	inset := (1 - ratio) / 2
	return MakeFold(geom.Lerp(start, end, inset), geom.Lerp(start, end, 1-inset), Cut), nil
}
