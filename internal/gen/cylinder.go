package gen

import (
	"math"

	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/pattern"
)

// Cylinder unfolds a closed cylinder of diameter width. The body is one
// rectangle as wide as the true circumference (2πr), not a polygonal
// approximation. Depth is not read.
//
// A tapered tab on the body's right edge, spanning the middle 80% of the
// height, closes the wrap through a slit beside the left edge. Each cap is a
// 12-gon of radius r ringed by a skirt: the 12 cap edges are mountain
// attachment lines, 12 radial valley folds split the skirt into segments, and
// one skirt edge hinges the cap onto the body's rim.
func Cylinder(cfg pattern.Config) (*pattern.Pattern, error) {
	if err := CheckConfig(cfg); err != nil {
		return nil, err
	}
	radius, h := cfg.Width/2, cfg.Height
	circ := 2 * math.Pi * radius
	tab, _ := TabDepth(cfg)
	b := newBuilder(cfg)

	c0, c1 := geom.Planar(0, 0), geom.Planar(circ, 0)
	c2, c3 := geom.Planar(circ, h), geom.Planar(0, h)
	b.face(c0, c1, c2, c3)

	// The caps' skirts are as deep as a tab. Their outer rings are sized so the
	// skirt is that deep measured square to each cap edge.
	half := math.Pi / cylinderCapSides
	outer := radius + tab/math.Cos(half)
	apothem := outer * math.Cos(half)

	// The top cap stands on the body's top edge, its hinge the lowest skirt
	// edge; the bottom cap hangs from the bottom edge the same way.
	top := capRings(geom.Planar(circ/2, h+apothem), radius, outer, -math.Pi/2-half)
	bottom := capRings(geom.Planar(circ/2, -apothem), radius, outer, math.Pi/2-half)
	b.face(top.inner...)
	b.face(bottom.inner...)
	top.skirtFaces(b)
	bottom.skirtFaces(b)

	// Body perimeter, split where the hinges and the closing tab meet it.
	// The bottom hinge runs right to left (outer[0] is right of outer[1]), the
	// top hinge left to right.
	b.chain(pattern.Cut, c0, bottom.outer[1])
	b.chain(pattern.Cut, bottom.outer[0], c1, geom.Planar(circ, (1-cylinderTabSpan)/2*h))
	b.chain(pattern.Cut, geom.Planar(circ, (1+cylinderTabSpan)/2*h), c2, top.outer[1])
	b.chain(pattern.Cut, top.outer[0], c3, c0)

	b.tab(geom.Planar(circ, (1-cylinderTabSpan)/2*h), geom.Planar(circ, (1+cylinderTabSpan)/2*h), tab)
	b.slit(c3, c0, slitInset(tab), cylinderTabSpan)

	top.folds(b)
	bottom.folds(b)

	return b.pattern()
}

// capRing is a cylinder cap: the 12-gon itself and the outer edge of its
// skirt, corner for corner.
type capRing struct {
	inner, outer []geom.Point
}

func capRings(center geom.Point, radius, outer, phase float64) capRing {
	return capRing{
		inner: geom.RegularPolygon(center, cylinderCapSides, radius, phase),
		outer: geom.RegularPolygon(center, cylinderCapSides, outer, phase),
	}
}

func (c capRing) skirtFaces(b *builder) {
	n := len(c.inner)
	for k := 0; k < n; k++ {
		b.face(c.inner[k], c.outer[k], c.outer[(k+1)%n], c.inner[(k+1)%n])
	}
}

// folds adds the attachment lines, the radial folds, and the skirt's outer
// edge. outer[0]→outer[1] is the hinge onto the body.
func (c capRing) folds(b *builder) {
	n := len(c.inner)
	for k := 0; k < n; k++ {
		next := (k + 1) % n
		b.fold(c.inner[k], c.inner[next], pattern.Mountain)
		b.fold(c.inner[k], c.outer[k], pattern.Valley)
		if k == 0 {
			b.fold(c.outer[k], c.outer[next], pattern.Mountain)
		} else {
			b.fold(c.outer[k], c.outer[next], pattern.Cut)
		}
	}
}
