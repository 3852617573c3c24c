package mesh

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/foldlock/internal/gen"
	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/pattern"
)

var sampleConfigs = []pattern.Config{
	{Shape: pattern.Box, Width: 5, Height: 3, Depth: 5, Thickness: 0.5},
	{Shape: pattern.Pyramid, Width: 6, Height: 4, Depth: 8, Thickness: 0.3},
	{Shape: pattern.Envelope, Width: 11, Depth: 16, Thickness: 0.2},
	{Shape: pattern.Prism, Width: 6, Height: 9, Thickness: 0.4},
	{Shape: pattern.Cylinder, Width: 5, Height: 10, Thickness: 0.4},
}

func TestTriangulationCoversFaces(t *testing.T) {
	for _, cfg := range sampleConfigs {
		t.Run(cfg.Shape.String(), func(t *testing.T) {
			p, err := gen.Generate(cfg)
			require.NoError(t, err)

			faces, err := Triangulate(p)
			require.NoError(t, err)
			require.Len(t, faces, len(p.Faces))
			for i, tris := range faces {
				assert.Len(t, tris, len(p.Faces[i])-2, "face %d", i)
				sum := 0.0
				for _, tri := range tris {
					sum += tri.Area()
				}
				assert.InDelta(t, FaceArea(p, i), sum, 1e-9, "face %d", i)
				assert.Equal(t, orb.CCW, Orientation(p, i), "face %d", i)
			}
		})
	}
}

func TestBoxFaceAreas(t *testing.T) {
	p, err := gen.Generate(sampleConfigs[0])
	require.NoError(t, err)
	for i, want := range []float64{25, 15, 15, 15, 15, 25} {
		assert.InDelta(t, want, FaceArea(p, i), 1e-9)
	}
}

func TestBoundsCoverPattern(t *testing.T) {
	p, err := gen.Generate(sampleConfigs[4])
	require.NoError(t, err)

	b := Bounds(p)
	for _, f := range p.Folds {
		assert.True(t, b.Contains(orb.Point{f.Start.X, f.Start.Z}))
		assert.True(t, b.Contains(orb.Point{f.End.X, f.End.Z}))
	}
	// The closing tab sticks out past the body.
	assert.Greater(t, b.Max.X(), 2*math.Pi*2.5)
}

func TestPolygonDegenerate(t *testing.T) {
	_, err := Polygon([]geom.Point{geom.Planar(0, 0), geom.Planar(1, 0)})
	require.ErrorIs(t, err, pattern.ErrDegenerateGeometry)

	tris, err := Polygon([]geom.Point{geom.Planar(0, 0), geom.Planar(2, 0), geom.Planar(2, 2), geom.Planar(0, 2)})
	require.NoError(t, err)
	assert.Len(t, tris, 2)
	assert.InDelta(t, 4, tris[0].Area()+tris[1].Area(), 1e-12)
}
