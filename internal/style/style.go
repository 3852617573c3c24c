// Package style maps fold types to the strokes used when a pattern is drawn
// or exported, and provides face fill colours.
package style

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/foldlock/internal/pattern"
)

// Stroke describes how one fold line is drawn. Dash lengths alternate
// on/off in pattern units; an empty Dash is a solid line.
type Stroke struct {
	Color color.RGBA `json:"-"`
	Hex   string     `json:"color"`
	Dash  []float64  `json:"dash,omitempty"`
	Width float64    `json:"width"`
}

// Dashed reports whether s is a dashed stroke.
func (s Stroke) Dashed() bool { return len(s.Dash) > 0 }

func hsv(h, s, v float64) colorful.Color {
	return colorful.Hsv(h, clamp(s, 0, 1), clamp(v, 0, 1))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func stroke(c colorful.Color, width float64, dash ...float64) Stroke {
	return Stroke{Color: rgba(c), Hex: c.Hex(), Dash: dash, Width: width}
}

// For returns the stroke of a fold type. Cuts are solid; mountains use a long
// dash and valleys a short one.
func For(t pattern.FoldType) (Stroke, error) {
	switch t {
	case pattern.Cut:
		return stroke(hsv(0, 0, 0), 0.05), nil
	case pattern.Mountain:
		return stroke(hsv(0, 0.85, 0.8), 0.03, 0.6, 0.2), nil
	case pattern.Valley:
		return stroke(hsv(215, 0.85, 0.8), 0.03, 0.15, 0.15), nil
	default:
		return Stroke{}, fmt.Errorf("no stroke for fold type %v", t)
	}
}

// Entry is one line of a drawing legend.
type Entry struct {
	Type   pattern.FoldType `json:"type"`
	Stroke Stroke           `json:"stroke"`
}

// Legend returns the stroke of every fold type, cuts first.
func Legend() []Entry {
	var out []Entry
	for _, t := range []pattern.FoldType{pattern.Cut, pattern.Mountain, pattern.Valley} {
		s, _ := For(t)
		out = append(out, Entry{Type: t, Stroke: s})
	}
	return out
}

// FaceFills returns n pale fill colours with evenly spaced hues, so
// neighbouring faces stay distinguishable.
func FaceFills(n int) []color.RGBA {
	fills := make([]color.RGBA, n)
	for i := range fills {
		fills[i] = rgba(hsv(360*float64(i)/float64(n), 0.25, 0.95))
	}
	return fills
}
