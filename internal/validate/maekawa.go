package validate

import (
	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/vertex"
)

// MaekawaVertex holds the fold counts at one vertex.
type MaekawaVertex struct {
	Point     geom.Point `json:"point"`
	Mountains int        `json:"mountains"`
	Valleys   int        `json:"valleys"`
	Cuts      int        `json:"cuts"`
	Interior  bool       `json:"interior"`
	Valid     bool       `json:"valid"`
}

// MaekawaDetails is the Details payload of the Maekawa result.
type MaekawaDetails struct {
	Vertices []MaekawaVertex `json:"vertices"`
}

// MaekawaHolds reports whether mountain and valley counts differ by exactly two.
func MaekawaHolds(mountains, valleys int) bool {
	d := mountains - valleys
	return d == 2 || d == -2
}

// Maekawa checks |M - V| = 2 at every interior vertex.
func Maekawa(vs []vertex.Vertex) Result {
	res := newResult("maekawa")
	outcomes := eachVertex(vs, func(v vertex.Vertex) MaekawaVertex {
		m, vv, c := v.Counts()
		mv := MaekawaVertex{Point: v.Point, Mountains: m, Valleys: vv, Cuts: c, Interior: v.Interior()}
		mv.Valid = !mv.Interior || MaekawaHolds(m, vv)
		return mv
	})
	for _, mv := range outcomes {
		switch {
		case !mv.Interior:
			res.warnf("vertex %v: perimeter vertex (M=%d, V=%d), exempt", mv.Point, mv.Mountains, mv.Valleys)
		case !mv.Valid:
			res.errorf("vertex %v: |M-V| = |%d-%d| != 2", mv.Point, mv.Mountains, mv.Valleys)
		}
	}
	res.Details = MaekawaDetails{Vertices: outcomes}
	return res.finish()
}
