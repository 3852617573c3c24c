package gen

import (
	"fmt"
	"math"

	"github.com/irfansharif/foldlock/internal/pattern"
)

const (
	boxTabCoefficient     = 0.15 // × min(w, h, d)
	pyramidTabCoefficient = 0.12 // × base
	roundTabCoefficient   = 0.15 // × radius, prism and cylinder
	envelopeBodyRatio     = 0.6  // body depth as a fraction of depth
	envelopeBottomFlap    = 0.3
	envelopeSideFlap      = 0.25
	envelopeTopFlap       = 0.35
	envelopeTuckSlitRatio = 0.3 // tuck slit length as a fraction of width
	cylinderTabSpan       = 0.8 // closing tab length as a fraction of height
	cylinderCapSides      = 12
	slitInsetFraction     = 0.5 // slit distance from its seam, as a fraction of tab depth
)

// Usage records which Config dimensions a shape reads. Dimensions a shape
// does not use are ignored entirely, so they may be left unset.
type Usage struct {
	Width, Height, Depth bool
}

// Uses returns the dimension usage of s.
func Uses(s pattern.Shape) (Usage, error) {
	switch s {
	case pattern.Box:
		return Usage{Width: true, Height: true, Depth: true}, nil
	case pattern.Pyramid:
		return Usage{Width: true, Height: true, Depth: true}, nil
	case pattern.Envelope:
		return Usage{Width: true, Depth: true}, nil
	case pattern.Prism, pattern.Cylinder:
		return Usage{Width: true, Height: true}, nil
	default:
		return Usage{}, fmt.Errorf("%w: %v", pattern.ErrUnknownShape, s)
	}
}

// Dimensions returns the values of the dimensions cfg.Shape reads, in
// width, height, depth order.
func Dimensions(cfg pattern.Config) ([]float64, error) {
	u, err := Uses(cfg.Shape)
	if err != nil {
		return nil, err
	}
	var dims []float64
	if u.Width {
		dims = append(dims, cfg.Width)
	}
	if u.Height {
		dims = append(dims, cfg.Height)
	}
	if u.Depth {
		dims = append(dims, cfg.Depth)
	}
	return dims, nil
}

// SmallestDimension returns the smallest dimension cfg.Shape reads.
func SmallestDimension(cfg pattern.Config) (float64, error) {
	dims, err := Dimensions(cfg)
	if err != nil {
		return 0, err
	}
	smallest := math.Inf(1)
	for _, d := range dims {
		smallest = math.Min(smallest, d)
	}
	return smallest, nil
}

// CheckConfig returns ErrInvalidDimension if any dimension the shape reads,
// or the thickness, is not positive.
func CheckConfig(cfg pattern.Config) error {
	u, err := Uses(cfg.Shape)
	if err != nil {
		return err
	}
	for _, d := range []struct {
		name  string
		used  bool
		value float64
	}{
		{"width", u.Width, cfg.Width},
		{"height", u.Height, cfg.Height},
		{"depth", u.Depth, cfg.Depth},
		{"thickness", true, cfg.Thickness},
	} {
		if d.used && !(d.value > 0) {
			return fmt.Errorf("%w: %s %s=%g", pattern.ErrInvalidDimension, cfg.Shape, d.name, d.value)
		}
	}
	return nil
}

// PyramidBase returns the side of a pyramid's square base. The larger of
// width and depth is clamped away and has no effect until it becomes the
// smaller one.
func PyramidBase(cfg pattern.Config) float64 { return math.Min(cfg.Width, cfg.Depth) }

// TabCoefficient returns the tab depth coefficient of s. Envelopes have no
// locking tabs and report zero.
func TabCoefficient(s pattern.Shape) (float64, error) {
	switch s {
	case pattern.Box:
		return boxTabCoefficient, nil
	case pattern.Pyramid:
		return pyramidTabCoefficient, nil
	case pattern.Prism, pattern.Cylinder:
		return roundTabCoefficient, nil
	case pattern.Envelope:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %v", pattern.ErrUnknownShape, s)
	}
}

// TabDepth returns the depth of the locking tabs generated for cfg: the
// shape's coefficient times its governing size (min(w, h, d) for a box, the
// clamped base for a pyramid, the radius for prisms and cylinders).
// Envelopes return zero.
func TabDepth(cfg pattern.Config) (float64, error) {
	coeff, err := TabCoefficient(cfg.Shape)
	if err != nil {
		return 0, err
	}
	switch cfg.Shape {
	case pattern.Box:
		return coeff * math.Min(cfg.Width, math.Min(cfg.Height, cfg.Depth)), nil
	case pattern.Pyramid:
		return coeff * PyramidBase(cfg), nil
	case pattern.Prism, pattern.Cylinder:
		return coeff * cfg.Width / 2, nil
	default:
		return 0, nil
	}
}

// TuckSlitLength returns the length of an envelope's tuck slit.
func TuckSlitLength(cfg pattern.Config) float64 { return envelopeTuckSlitRatio * cfg.Width }
