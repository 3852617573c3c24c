package gen

import (
	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/pattern"
)

// Envelope unfolds a flat envelope: a rectangular body of width × 0.6·depth
// with a triangular flap on each edge. The flaps fold inwards over the body
// (valley folds) and the top flap carries a centred tuck slit. Height is not
// read.
func Envelope(cfg pattern.Config) (*pattern.Pattern, error) {
	if err := CheckConfig(cfg); err != nil {
		return nil, err
	}
	w, d := cfg.Width, cfg.Depth
	body := envelopeBodyRatio * d
	b := newBuilder(cfg)

	e0, e1 := geom.Planar(0, 0), geom.Planar(w, 0)
	e2, e3 := geom.Planar(w, body), geom.Planar(0, body)
	bottom := geom.Planar(w/2, -envelopeBottomFlap*d)
	top := geom.Planar(w/2, body+envelopeTopFlap*d)
	left := geom.Planar(-envelopeSideFlap*d, body/2)
	right := geom.Planar(w+envelopeSideFlap*d, body/2)

	b.face(e0, e1, e2, e3)
	b.face(e0, bottom, e1)
	b.face(e2, top, e3)
	b.face(e3, left, e0)
	b.face(e1, right, e2)

	b.chain(pattern.Valley, e0, e1, e2, e3, e0)
	b.chain(pattern.Cut, e0, bottom, e1, right, e2, top, e3, left, e0)

	// The tuck slit crosses the top flap a third of the way up, where the flap
	// is still two thirds of the body wide.
	z := body + envelopeTopFlap*d/3
	if b.err == nil {
		s, err := pattern.Slit(geom.Planar(0, z), geom.Planar(w, z), envelopeTuckSlitRatio)
		if err != nil {
			return nil, err
		}
		b.fold(s.Start, s.End, s.Type)
	}

	return b.pattern()
}
