package gen

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/pattern"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var sampleConfigs = []pattern.Config{
	{Shape: pattern.Box, Width: 5, Height: 3, Depth: 5, Thickness: 0.5},
	{Shape: pattern.Pyramid, Width: 6, Height: 4, Depth: 8, Thickness: 0.3},
	{Shape: pattern.Envelope, Width: 11, Depth: 16, Thickness: 0.2},
	{Shape: pattern.Prism, Width: 6, Height: 9, Thickness: 0.4},
	{Shape: pattern.Cylinder, Width: 5, Height: 10, Thickness: 0.4},
}

func mustGenerate(t *testing.T, cfg pattern.Config) *pattern.Pattern {
	t.Helper()
	p, err := Generate(cfg)
	require.NoError(t, err, cfg.String())
	return p
}

// signedArea is the shoelace area in the X/Z plane, positive for
// counter-clockwise corners.
func signedArea(pts []geom.Point) float64 {
	a := 0.0
	for i := range pts {
		a += geom.Cross(pts[i], pts[(i+1)%len(pts)])
	}
	return a / 2
}

func TestGenerateIsIdempotent(t *testing.T) {
	for _, cfg := range sampleConfigs {
		t.Run(cfg.Shape.String(), func(t *testing.T) {
			diff(t, mustGenerate(t, cfg), mustGenerate(t, cfg))
		})
	}
}

func TestGeneratedPatternsAreWellFormed(t *testing.T) {
	for _, cfg := range sampleConfigs {
		t.Run(cfg.Shape.String(), func(t *testing.T) {
			p := mustGenerate(t, cfg)
			require.NoError(t, p.Check())
			assert.Equal(t, cfg.Shape.String(), p.Name)

			for i := range p.Faces {
				assert.Positive(t, signedArea(p.FacePoints(i)), "face %d is not counter-clockwise", i)
			}
			for _, v := range p.Vertices {
				assert.Zero(t, v.Y)
			}

			ix := geom.NewIndex(geom.VertexEpsilon)
			for _, v := range p.Vertices {
				_, added := ix.Insert(v)
				assert.True(t, added, "duplicate vertex %v", v)
			}
			for _, f := range p.Folds {
				assert.Greater(t, f.Len(), geom.VertexEpsilon)
				_, ok := ix.Lookup(f.Start)
				assert.True(t, ok, "fold start %v is not a pattern vertex", f.Start)
				_, ok = ix.Lookup(f.End)
				assert.True(t, ok, "fold end %v is not a pattern vertex", f.End)
			}
		})
	}
}

func TestBoxScenario(t *testing.T) {
	p := mustGenerate(t, pattern.Config{Shape: pattern.Box, Width: 5, Height: 3, Depth: 5, Thickness: 0.5})
	require.Len(t, p.Faces, 6)

	// bottom, front, back, left, right, top
	want := []float64{25, 15, 15, 15, 15, 25}
	for i, area := range want {
		assert.InDelta(t, area, signedArea(p.FacePoints(i)), 1e-9, "face %d", i)
	}
	assert.Equal(t, 10, p.Count(pattern.Mountain), "5 hinges and 5 tab bases")
	assert.Zero(t, p.Count(pattern.Valley))
}

func TestShapeFoldCounts(t *testing.T) {
	for _, tc := range []struct {
		cfg                       pattern.Config
		faces, mountains, valleys int
	}{
		{sampleConfigs[1], 5, 4 + 2, 0},
		{sampleConfigs[2], 5, 0, 4},
		{sampleConfigs[3], 7, 6 + 6, 0},
		{sampleConfigs[4], 1 + 2 + 24, 2*12 + 2 + 1, 24},
	} {
		t.Run(tc.cfg.Shape.String(), func(t *testing.T) {
			p := mustGenerate(t, tc.cfg)
			assert.Len(t, p.Faces, tc.faces)
			assert.Equal(t, tc.mountains, p.Count(pattern.Mountain))
			assert.Equal(t, tc.valleys, p.Count(pattern.Valley))
		})
	}
}

func TestCylinderBodyIsTrueCircumference(t *testing.T) {
	for _, depth := range []float64{0, 1, 30} {
		p := mustGenerate(t, pattern.Config{Shape: pattern.Cylinder, Width: 5, Height: 10, Depth: depth, Thickness: 0.4})
		body := p.FacePoints(0)
		minX, maxX := math.Inf(1), math.Inf(-1)
		for _, v := range body {
			minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		}
		assert.InDelta(t, 2*math.Pi*2.5, maxX-minX, 1e-3)
	}
}

func TestCylinderCapsSitOnTheRim(t *testing.T) {
	p := mustGenerate(t, pattern.Config{Shape: pattern.Cylinder, Width: 4, Height: 6, Thickness: 0.2})
	for _, face := range []int{1, 2} {
		corners := p.FacePoints(face)
		require.Len(t, corners, 12)
		side := geom.Dist(corners[0], corners[1])
		assert.InDelta(t, 2*2*math.Sin(math.Pi/12), side, 1e-9)
	}

	hinges := 0
	for _, f := range p.Folds {
		if f.Type == pattern.Mountain && math.Abs(f.Start.Z-f.End.Z) < 1e-9 &&
			(math.Abs(f.Start.Z) < 1e-9 || math.Abs(f.Start.Z-6) < 1e-9) {
			hinges++
		}
	}
	assert.Equal(t, 2, hinges)
}

func TestParameterIndependence(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b pattern.Config
	}{
		{
			"pyramid clamps to the smaller of width and depth",
			pattern.Config{Shape: pattern.Pyramid, Width: 10, Height: 4, Depth: 5, Thickness: 0.3},
			pattern.Config{Shape: pattern.Pyramid, Width: 15, Height: 4, Depth: 5, Thickness: 0.3},
		},
		{
			"prism ignores depth",
			pattern.Config{Shape: pattern.Prism, Width: 6, Height: 9, Depth: 1, Thickness: 0.4},
			pattern.Config{Shape: pattern.Prism, Width: 6, Height: 9, Depth: 100, Thickness: 0.4},
		},
		{
			"cylinder ignores depth",
			pattern.Config{Shape: pattern.Cylinder, Width: 5, Height: 10, Depth: 2, Thickness: 0.4},
			pattern.Config{Shape: pattern.Cylinder, Width: 5, Height: 10, Depth: 7, Thickness: 0.4},
		},
		{
			"envelope ignores height",
			pattern.Config{Shape: pattern.Envelope, Width: 11, Height: 1, Depth: 16, Thickness: 0.2},
			pattern.Config{Shape: pattern.Envelope, Width: 11, Height: 50, Depth: 16, Thickness: 0.2},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			diff(t, mustGenerate(t, tc.a), mustGenerate(t, tc.b))
		})
	}
}

func TestPyramidSlantHeight(t *testing.T) {
	p := mustGenerate(t, pattern.Config{Shape: pattern.Pyramid, Width: 6, Height: 4, Depth: 9, Thickness: 0.3})
	front := p.FacePoints(1)
	// Apex of the front triangle lies a slant height below the base edge.
	assert.InDelta(t, -5, front[1].Z, 1e-12)
	assert.InDelta(t, 3, front[1].X, 1e-12)
}

func TestInvalidConfigs(t *testing.T) {
	for _, cfg := range []pattern.Config{
		{Shape: pattern.Box, Width: 0, Height: 3, Depth: 5, Thickness: 0.5},
		{Shape: pattern.Box, Width: 5, Height: -3, Depth: 5, Thickness: 0.5},
		{Shape: pattern.Envelope, Width: 5, Depth: 5},
		{Shape: pattern.Cylinder, Width: 5, Height: math.NaN(), Thickness: 0.5},
	} {
		_, err := Generate(cfg)
		require.ErrorIs(t, err, pattern.ErrInvalidDimension, cfg.String())
	}

	_, err := Generate(pattern.Config{Shape: pattern.Shape(42), Width: 1, Height: 1, Depth: 1, Thickness: 1})
	require.ErrorIs(t, err, pattern.ErrUnknownShape)

	// Unused dimensions may be left unset.
	_, err = Generate(pattern.Config{Shape: pattern.Envelope, Width: 5, Depth: 5, Thickness: 0.1})
	require.NoError(t, err)
}

func TestTabDepth(t *testing.T) {
	for _, tc := range []struct {
		cfg  pattern.Config
		want float64
	}{
		{pattern.Config{Shape: pattern.Box, Width: 5, Height: 3, Depth: 5}, 0.45},
		{pattern.Config{Shape: pattern.Pyramid, Width: 10, Height: 1, Depth: 5}, 0.6},
		{pattern.Config{Shape: pattern.Prism, Width: 6, Height: 1}, 0.45},
		{pattern.Config{Shape: pattern.Cylinder, Width: 6, Height: 1}, 0.45},
		{pattern.Config{Shape: pattern.Envelope, Width: 6, Depth: 1}, 0},
	} {
		got, err := TabDepth(tc.cfg)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, tc.cfg.String())
	}
	_, err := TabDepth(pattern.Config{Shape: pattern.Shape(-1)})
	require.ErrorIs(t, err, pattern.ErrUnknownShape)
}

func TestSmallestDimensionIgnoresUnusedDimensions(t *testing.T) {
	got, err := SmallestDimension(pattern.Config{Shape: pattern.Cylinder, Width: 5, Height: 10, Depth: 0.1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestGenerateIsTotalOverPositiveDimensions(t *testing.T) {
	var configs []pattern.Config
	for _, shape := range pattern.Shapes {
		for _, s := range []float64{0.0005, 0.0009, 0.0015, 0.01, 1, 100, 1e4} {
			configs = append(configs,
				pattern.Config{Shape: shape, Width: s, Height: s, Depth: s, Thickness: 0.1},
				pattern.Config{Shape: shape, Width: s, Height: 5, Depth: 5, Thickness: 0.1},
				pattern.Config{Shape: shape, Width: 5, Height: s, Depth: 5, Thickness: 0.1},
				pattern.Config{Shape: shape, Width: 5, Height: 5, Depth: s, Thickness: 0.1},
			)
		}
	}

	for _, cfg := range configs {
		p, err := Generate(cfg)
		require.NoError(t, err, cfg.String())
		require.NoError(t, p.Check(), cfg.String())
		for i, face := range p.Faces {
			seen := make(map[int]bool)
			for _, vi := range face {
				assert.False(t, seen[vi], "%s: face %d repeats vertex %d", cfg, i, vi)
				seen[vi] = true
			}
			assert.Positive(t, signedArea(p.FacePoints(i)), "%s: face %d", cfg, i)
		}
		for _, f := range p.Folds {
			assert.Positive(t, f.Len(), "%s: zero-length %s fold", cfg, f.Type)
		}
	}
}
