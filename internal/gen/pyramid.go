package gen

import (
	"math"

	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/pattern"
)

// Pyramid unfolds a square pyramid into a star: the base in the middle and a
// triangle on each of its edges. The base side is min(width, depth), so
// widening the larger of the two changes nothing.
//
// Two tabs sit on diagonally opposite triangle edges (the front triangle's
// left edge, the back triangle's right edge); each tucks into a slit in the
// neighbouring triangle.
func Pyramid(cfg pattern.Config) (*pattern.Pattern, error) {
	if err := CheckConfig(cfg); err != nil {
		return nil, err
	}
	base := PyramidBase(cfg)
	half := base / 2
	slant := math.Sqrt(cfg.Height*cfg.Height + half*half)
	tab, _ := TabDepth(cfg)
	inset := slitInset(tab)
	b := newBuilder(cfg)

	p0, p1 := geom.Planar(0, 0), geom.Planar(base, 0)
	p2, p3 := geom.Planar(base, base), geom.Planar(0, base)
	front := geom.Planar(half, -slant)
	right := geom.Planar(base+slant, half)
	back := geom.Planar(half, base+slant)
	left := geom.Planar(-slant, half)

	b.face(p0, p1, p2, p3) // base
	b.face(p0, front, p1)  // front
	b.face(p1, right, p2)  // right
	b.face(p2, back, p3)   // back
	b.face(p3, left, p0)   // left

	b.chain(pattern.Mountain, p0, p1, p2, p3, p0)

	b.tab(p0, front, tab)
	b.fold(front, p1, pattern.Cut)
	b.chain(pattern.Cut, p1, right, p2)
	b.tab(p2, back, tab)
	b.fold(back, p3, pattern.Cut)
	b.chain(pattern.Cut, p3, left, p0)

	b.slit(left, p0, inset, pattern.DefaultSlitRatio)  // receives the front tab
	b.slit(right, p2, inset, pattern.DefaultSlitRatio) // receives the back tab

	return b.pattern()
}
