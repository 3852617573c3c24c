// Package gen implements the procedural fold-pattern generators, one per
// shape.
//
// Every generator follows the same conventions:
//   - The unfolding lies flat in the X/Z plane (Y = 0).
//   - Faces unfold outwards from a reference face (the base or body) in a
//     cross or star layout, and are wound counter-clockwise.
//   - Locking tabs pair with slits on the face they tuck into, so every tab
//     has a unique destination and no seam carries two tabs or two slits.
//   - No vertex where four or more creases meet violates Kawasaki-Justin or
//     Maekawa.
//
// Generators are pure: the same Config always yields an identical Pattern.
package gen

import (
	"fmt"

	"github.com/irfansharif/foldlock/internal/pattern"
)

// Generate builds the pattern described by cfg. It fails with
// pattern.ErrInvalidDimension if a dimension the shape reads (or the
// thickness) is not positive, and with pattern.ErrUnknownShape for shapes
// outside the enumeration. No partial pattern is returned on failure.
func Generate(cfg pattern.Config) (*pattern.Pattern, error) {
	if err := CheckConfig(cfg); err != nil {
		return nil, err
	}
	switch cfg.Shape {
	case pattern.Box:
		return Box(cfg)
	case pattern.Pyramid:
		return Pyramid(cfg)
	case pattern.Envelope:
		return Envelope(cfg)
	case pattern.Prism:
		return Prism(cfg)
	case pattern.Cylinder:
		return Cylinder(cfg)
	default:
		return nil, fmt.Errorf("%w: %v", pattern.ErrUnknownShape, cfg.Shape)
	}
}

// slitInset returns how far a slit sits from the seam it receives a tab on.
func slitInset(tabDepth float64) float64 { return slitInsetFraction * tabDepth }
