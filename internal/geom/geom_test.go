package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestPointArithmetic(t *testing.T) {
	diff(t, Planar(-10, 4), Planar(0, 0).Add(Planar(-10, 4)))
	diff(t, Planar(1, 1), Planar(3, 2).Sub(Planar(2, 1)))
	diff(t, Planar(6, -2), Planar(3, -1).Scale(2))
	assert.Zero(t, Planar(3, 4).Y)
	assert.Equal(t, 5.0, Planar(3, 4).Len())
	assert.Equal(t, 5.0, Dist(Planar(0, 10), Planar(3, 6)))
}

func TestRightNormal(t *testing.T) {
	// A counter-clockwise traversal of the unit square along its bottom edge
	// has the outside below it.
	n := Planar(1, 0).RightNormal()
	diff(t, Planar(0, -1), n, cmpopts.EquateApprox(0, 1e-12))
	assert.Positive(t, Cross(Planar(1, 0), Planar(0, 1)))
}

func TestAffineRotationAndInverse(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Planar(0, 1), Rotation(math.Pi/2).MulPoint(Planar(1, 0)), approx)

	tr := Translation(2, 3).Mul(Rotation(0.3))
	inv, err := tr.Inv()
	require.NoError(t, err)
	p := Planar(1.5, -4)
	diff(t, p, inv.MulPoint(tr.MulPoint(p)), approx)

	_, err = MakeAffine(1, 2, 0, 2, 4, 0).Inv()
	require.Error(t, err)
}

func TestRegularPolygon(t *testing.T) {
	pts := RegularPolygon(Planar(1, 1), 6, 2, 0)
	require.Len(t, pts, 6)
	for i, p := range pts {
		assert.InDelta(t, 2, Dist(p, Planar(1, 1)), 1e-12)
		next := pts[(i+1)%len(pts)]
		assert.InDelta(t, 2, Dist(p, next), 1e-12, "hexagon side equals radius")
	}
}

func TestIndexMergesWithinTolerance(t *testing.T) {
	ix := NewIndex(VertexEpsilon)

	i, added := ix.Insert(Planar(0, 0))
	assert.True(t, added)
	assert.Equal(t, 0, i)

	i, added = ix.Insert(Planar(5e-4, -5e-4))
	assert.False(t, added)
	assert.Equal(t, 0, i)

	i, added = ix.Insert(Planar(2e-3, 0))
	assert.True(t, added)
	assert.Equal(t, 1, i)

	for k := 0; k < 50; k++ {
		ix.Insert(Planar(float64(k), float64(k%7)))
	}
	j, ok := ix.Lookup(Planar(20.0002, 6))
	require.True(t, ok)
	diff(t, Planar(20, 6), ix.Points()[j])

	_, ok = ix.Lookup(Planar(20.5, 6))
	assert.False(t, ok)
}

func TestIndexPointsIsACopy(t *testing.T) {
	ix := NewIndex(VertexEpsilon)
	ix.Insert(Planar(1, 2))
	pts := ix.Points()
	pts[0] = Planar(9, 9)
	diff(t, []Point{Planar(1, 2)}, ix.Points())
	assert.Equal(t, 1, ix.Len())
}
