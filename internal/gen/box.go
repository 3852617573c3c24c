package gen

import (
	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/pattern"
)

// Box unfolds a lidded box into a cross: the bottom in the middle, front
// below it, back above, left and right beside it, and the top (lid) hinged
// beyond the front.
//
// Tabs sit on the back's two side edges, the lid's two side edges and the
// lid's leading edge. The back's tabs tuck into slits near the left and right
// faces' back seams; the lid's side tabs into slits near the left and right
// rims; the lid's leading tab into a slit near the back's rim.
func Box(cfg pattern.Config) (*pattern.Pattern, error) {
	if err := CheckConfig(cfg); err != nil {
		return nil, err
	}
	w, h, d := cfg.Width, cfg.Height, cfg.Depth
	tab, _ := TabDepth(cfg)
	inset := slitInset(tab)
	b := newBuilder(cfg)

	// Bottom.
	b0, b1 := geom.Planar(0, 0), geom.Planar(w, 0)
	b2, b3 := geom.Planar(w, d), geom.Planar(0, d)
	// Front, and the lid beyond it.
	f0, f1 := geom.Planar(0, -h), geom.Planar(w, -h)
	t0, t1 := geom.Planar(0, -h-d), geom.Planar(w, -h-d)
	// Back.
	k2, k3 := geom.Planar(w, d+h), geom.Planar(0, d+h)
	// Left and right.
	l0, l3 := geom.Planar(-h, 0), geom.Planar(-h, d)
	r1, r2 := geom.Planar(w+h, 0), geom.Planar(w+h, d)

	b.face(b0, b1, b2, b3) // bottom
	b.face(f0, f1, b1, b0) // front
	b.face(b3, b2, k2, k3) // back
	b.face(l0, b0, b3, l3) // left
	b.face(b1, r1, r2, b2) // right
	b.face(t0, t1, f1, f0) // top

	b.fold(b0, b1, pattern.Mountain) // bottom/front
	b.fold(b3, b2, pattern.Mountain) // bottom/back
	b.fold(b0, b3, pattern.Mountain) // bottom/left
	b.fold(b1, b2, pattern.Mountain) // bottom/right
	b.fold(f0, f1, pattern.Mountain) // front/top

	b.fold(f0, b0, pattern.Cut)
	b.fold(f1, b1, pattern.Cut)
	b.chain(pattern.Cut, b0, l0, l3, b3)
	b.chain(pattern.Cut, b1, r1, r2, b2)
	b.fold(k2, k3, pattern.Cut)

	b.tab(b2, k2, tab) // back, right side
	b.tab(k3, b3, tab) // back, left side
	b.tab(t0, t1, tab) // lid, leading edge
	b.tab(t1, f1, tab) // lid, right side
	b.tab(f0, t0, tab) // lid, left side

	b.slit(b3, l3, inset, pattern.DefaultSlitRatio) // left face, back seam
	b.slit(r2, b2, inset, pattern.DefaultSlitRatio) // right face, back seam
	b.slit(l3, l0, inset, pattern.DefaultSlitRatio) // left face, rim
	b.slit(r1, r2, inset, pattern.DefaultSlitRatio) // right face, rim
	b.slit(k2, k3, inset, pattern.DefaultSlitRatio) // back face, rim

	return b.pattern()
}
