package style

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/foldlock/internal/pattern"
)

func TestStrokeConventions(t *testing.T) {
	cut, err := For(pattern.Cut)
	require.NoError(t, err)
	mountain, err := For(pattern.Mountain)
	require.NoError(t, err)
	valley, err := For(pattern.Valley)
	require.NoError(t, err)

	assert.False(t, cut.Dashed())
	assert.True(t, mountain.Dashed())
	assert.True(t, valley.Dashed())
	assert.Greater(t, mountain.Dash[0], valley.Dash[0], "mountains use the longer dash")

	assert.NotEqual(t, cut.Hex, mountain.Hex)
	assert.NotEqual(t, cut.Hex, valley.Hex)
	assert.NotEqual(t, mountain.Hex, valley.Hex)
	assert.Equal(t, "#000000", cut.Hex)

	_, err = For(pattern.FoldType(7))
	require.Error(t, err)
}

func TestLegend(t *testing.T) {
	legend := Legend()
	require.Len(t, legend, 3)
	assert.Equal(t, pattern.Cut, legend[0].Type)
}

func TestFaceFillsAreDistinct(t *testing.T) {
	fills := FaceFills(6)
	require.Len(t, fills, 6)
	for i := range fills {
		a, _ := colorful.MakeColor(fills[i])
		b, _ := colorful.MakeColor(fills[(i+1)%len(fills)])
		assert.Greater(t, a.DistanceLab(b), 0.02, "fills %d and %d", i, i+1)
	}
}
