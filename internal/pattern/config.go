package pattern

import (
	"fmt"
	"strings"
)

// Shape enumerates the solids a pattern can be generated for.
type Shape int

const (
	Box Shape = iota
	Pyramid
	Envelope
	Prism
	Cylinder
)

// Shapes lists every shape, in declaration order.
var Shapes = []Shape{Box, Pyramid, Envelope, Prism, Cylinder}

func (s Shape) String() string {
	switch s {
	case Box:
		return "box"
	case Pyramid:
		return "pyramid"
	case Envelope:
		return "envelope"
	case Prism:
		return "prism"
	case Cylinder:
		return "cylinder"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape maps a shape name to its Shape. There is deliberately no default:
// an unrecognised name is an error rather than a box.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "box":
		return Box, nil
	case "pyramid":
		return Pyramid, nil
	case "envelope":
		return Envelope, nil
	case "prism", "hexagonal-prism", "hexprism", "hex":
		return Prism, nil
	case "cylinder":
		return Cylinder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

func (s Shape) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Shape) UnmarshalText(b []byte) error {
	v, err := ParseShape(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Config describes the solid to unfold. Width, Height and Depth are in
// centimetres; Thickness is the material thickness in millimetres. Not every
// shape reads every dimension.
type Config struct {
	Shape     Shape   `json:"shape" yaml:"shape"`
	Width     float64 `json:"width" yaml:"width"`
	Height    float64 `json:"height" yaml:"height"`
	Depth     float64 `json:"depth" yaml:"depth"`
	Thickness float64 `json:"thickness" yaml:"thickness"`
}

// ThicknessCM returns the material thickness in the pattern's length unit.
func (c Config) ThicknessCM() float64 { return c.Thickness / 10 }

func (c Config) String() string {
	return fmt.Sprintf("%s w=%g h=%g d=%g t=%gmm", c.Shape, c.Width, c.Height, c.Depth, c.Thickness)
}
