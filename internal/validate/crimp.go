package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/pattern"
	"github.com/irfansharif/foldlock/internal/vertex"
)

// sectorTieTolerance decides when two sectors count as equally small.
const sectorTieTolerance = 1e-9

// Fold is one crease in a circular sequence around a vertex. Sector is the
// angle from this crease to the next one, counter-clockwise.
type Fold struct {
	Type   pattern.FoldType
	Sector float64
}

// CrimpStep records one successful crimp: the removal of folds A and B
// (indices into the original sequence) across the sector between them.
type CrimpStep struct {
	A, B   int
	Sector float64
}

// CrimpResult is the outcome of a crimp reduction.
type CrimpResult struct {
	Valid  bool
	Steps  []CrimpStep
	Reason string
}

// ringNode is a fold in the reduction ring; prev and next index the arena.
type ringNode struct {
	fold       Fold
	prev, next int
}

type ring struct {
	nodes []ringNode
	head  int
	size  int
}

func newRing(seq []Fold) *ring {
	n := len(seq)
	r := &ring{nodes: make([]ringNode, n), size: n}
	for i, f := range seq {
		r.nodes[i] = ringNode{fold: f, prev: (i + n - 1) % n, next: (i + 1) % n}
	}
	return r
}

// smallest returns the node whose sector is smallest. Ties go to the first
// one reached walking forward from the head.
func (r *ring) smallest() int {
	best, bestSector := r.head, r.nodes[r.head].fold.Sector
	for i := r.nodes[r.head].next; i != r.head; i = r.nodes[i].next {
		if s := r.nodes[i].fold.Sector; s < bestSector-sectorTieTolerance {
			best, bestSector = i, s
		}
	}
	return best
}

// crimp removes i and its successor, folding their flanking sectors into
// i's predecessor.
func (r *ring) crimp(i int) {
	j := r.nodes[i].next
	p, q := r.nodes[i].prev, r.nodes[j].next
	r.nodes[p].fold.Sector += r.nodes[j].fold.Sector - r.nodes[i].fold.Sector
	r.nodes[p].next, r.nodes[q].prev = q, p
	if r.head == i || r.head == j {
		r.head = q
	}
	r.size -= 2
}

// Crimp runs the crimping reduction over a circular crease sequence. At each
// step the smallest sector is found; if its two bounding folds have opposite
// types they are removed and the neighbouring sectors merged, otherwise the
// sequence is rejected. It succeeds once two folds remain.
//
// This is a necessary-condition heuristic, not a complete flat-foldability
// decision.
func Crimp(seq []Fold) CrimpResult {
	if len(seq)%2 != 0 {
		return CrimpResult{Reason: fmt.Sprintf("odd number of creases (%d)", len(seq))}
	}
	if len(seq) <= 2 {
		return CrimpResult{Valid: true}
	}

	var res CrimpResult
	r := newRing(seq)
	for step := 1; r.size > 2; step++ {
		i := r.smallest()
		j := r.nodes[i].next
		a, b := r.nodes[i].fold, r.nodes[j].fold
		if a.Type == b.Type {
			res.Reason = fmt.Sprintf("step %d: smallest sector %.2f° lies between %s (fold %d) and %s (fold %d); same-type folds cannot be crimped",
				step, a.Sector*180/math.Pi, a.Type.Short(), i, b.Type.Short(), j)
			return res
		}
		res.Steps = append(res.Steps, CrimpStep{A: i, B: j, Sector: a.Sector})
		r.crimp(i)
	}
	res.Valid = true
	return res
}

// Sequence returns the circular fold sequence of v's creases.
func Sequence(v vertex.Vertex) []Fold {
	star := v.Star()
	sectors := vertex.Sectors(star)
	seq := make([]Fold, len(star))
	for i, ray := range star {
		seq[i] = Fold{Type: ray.Type, Sector: sectors[i]}
	}
	return seq
}

// VertexOutcome is the crimp verdict for one interior vertex.
type VertexOutcome struct {
	Point    geom.Point `json:"point"`
	Sequence string     `json:"sequence"`
	Steps    int        `json:"steps"`
	Valid    bool       `json:"valid"`
	Reason   string     `json:"reason,omitempty"`
}

// VertexDetails is the Details payload of the vertex validity result.
type VertexDetails struct {
	Skipped  int             `json:"skipped"`
	Vertices []VertexOutcome `json:"vertices"`
}

func crimpAt(v vertex.Vertex) VertexOutcome {
	seq := Sequence(v)
	var sb strings.Builder
	for _, f := range seq {
		sb.WriteString(f.Type.Short())
	}
	out := VertexOutcome{Point: v.Point, Sequence: sb.String()}

	m, vv, _ := v.Counts()
	if !MaekawaHolds(m, vv) {
		out.Reason = fmt.Sprintf("Maekawa violated (M=%d, V=%d)", m, vv)
		return out
	}
	cr := Crimp(seq)
	out.Valid, out.Steps, out.Reason = cr.Valid, len(cr.Steps), cr.Reason
	return out
}

// VertexValidity runs the crimp reduction at every interior vertex.
// Perimeter vertices are skipped.
func VertexValidity(vs []vertex.Vertex) Result {
	res := newResult("vertex-validity")
	details := VertexDetails{Vertices: []VertexOutcome{}}

	outcomes := eachVertex(vs, func(v vertex.Vertex) *VertexOutcome {
		if !v.Interior() {
			return nil
		}
		o := crimpAt(v)
		return &o
	})
	for _, o := range outcomes {
		if o == nil {
			details.Skipped++
			continue
		}
		details.Vertices = append(details.Vertices, *o)
		if !o.Valid {
			res.errorf("vertex %v (%s): %s", o.Point, o.Sequence, o.Reason)
		}
	}
	res.Details = details
	return res.finish()
}
