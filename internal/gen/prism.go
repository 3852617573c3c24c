package gen

import (
	"math"

	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/pattern"
)

// Prism unfolds an open hexagonal prism: a regular hexagon of diameter width
// with a rectangular side face extruded outwards from each edge. Depth is not
// read.
//
// Even side faces carry a tab on both side edges; odd side faces have plain
// cut side edges with a slit beside each, so every seam pairs one tab with one
// slit.
func Prism(cfg pattern.Config) (*pattern.Pattern, error) {
	if err := CheckConfig(cfg); err != nil {
		return nil, err
	}
	radius, h := cfg.Width/2, cfg.Height
	tab, _ := TabDepth(cfg)
	inset := slitInset(tab)
	b := newBuilder(cfg)

	hex := geom.RegularPolygon(geom.Planar(0, 0), 6, radius, -math.Pi/6)
	b.face(hex...)

	for i := range hex {
		v0, v1 := hex[i], hex[(i+1)%len(hex)]
		out := v1.Sub(v0).RightNormal().Scale(h)
		o0, o1 := v0.Add(out), v1.Add(out)

		b.face(v1, v0, o0, o1)
		b.fold(v0, v1, pattern.Mountain)
		b.fold(o0, o1, pattern.Cut)
		if i%2 == 0 {
			b.tab(v0, o0, tab)
			b.tab(o1, v1, tab)
			continue
		}
		b.fold(v0, o0, pattern.Cut)
		b.fold(o1, v1, pattern.Cut)
		b.slit(v0, o0, inset, pattern.DefaultSlitRatio)
		b.slit(o1, v1, inset, pattern.DefaultSlitRatio)
	}

	return b.pattern()
}
