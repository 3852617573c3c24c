package gen

import (
	"math"

	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/pattern"
)

// builder accumulates a pattern. Points are deduplicated through a spatial
// index so faces and folds sharing a corner share its vertex index. The first
// error is sticky; later calls become no-ops.
//
// The merge tolerance shrinks with the solid: it never exceeds
// mergeFraction of the smallest dimension, so distinct corners of a tiny
// pattern are never merged.
type builder struct {
	name  string
	index *geom.Index
	folds []pattern.FoldLine
	faces [][]int
	err   error
}

// mergeFraction bounds the merge tolerance relative to the smallest
// dimension. Every feature a generator places is at least a few percent of
// that dimension.
const mergeFraction = 1e-4

func newBuilder(cfg pattern.Config) *builder {
	eps := geom.VertexEpsilon
	if smallest, err := SmallestDimension(cfg); err == nil {
		eps = math.Min(eps, smallest*mergeFraction)
	}
	return &builder{name: cfg.Shape.String(), index: geom.NewIndex(eps)}
}

func (b *builder) vertex(p geom.Point) int {
	i, _ := b.index.Insert(p)
	return i
}

// face records a face from counter-clockwise corners.
func (b *builder) face(pts ...geom.Point) {
	idx := make([]int, len(pts))
	for i, p := range pts {
		idx[i] = b.vertex(p)
	}
	b.faces = append(b.faces, idx)
}

func (b *builder) fold(p, q geom.Point, typ pattern.FoldType) {
	b.vertex(p)
	b.vertex(q)
	b.folds = append(b.folds, pattern.MakeFold(p, q, typ))
}

// chain folds consecutive points with the same type.
func (b *builder) chain(typ pattern.FoldType, pts ...geom.Point) {
	for i := 0; i+1 < len(pts); i++ {
		b.fold(pts[i], pts[i+1], typ)
	}
}

// tab adds a locking tab outside the counter-clockwise face edge p→q.
func (b *builder) tab(p, q geom.Point, depth float64) {
	if b.err != nil {
		return
	}
	t, err := pattern.LockingTab(p, q, depth, false /* inward */)
	if err != nil {
		b.err = err
		return
	}
	for _, f := range t.Folds {
		b.fold(f.Start, f.End, f.Type)
	}
}

// slit adds a slit parallel to the counter-clockwise face edge p→q, moved
// inset into the face.
func (b *builder) slit(p, q geom.Point, inset, ratio float64) {
	if b.err != nil {
		return
	}
	in := q.Sub(p).RightNormal().Scale(-inset)
	s, err := pattern.Slit(p.Add(in), q.Add(in), ratio)
	if err != nil {
		b.err = err
		return
	}
	b.fold(s.Start, s.End, s.Type)
}

func (b *builder) pattern() (*pattern.Pattern, error) {
	if b.err != nil {
		return nil, b.err
	}
	p := &pattern.Pattern{
		Name:     b.name,
		Vertices: b.index.Points(),
		Folds:    b.folds,
		Faces:    b.faces,
	}
	if err := p.Check(); err != nil {
		return nil, err
	}
	return p, nil
}
