package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/foldlock/internal/app"
	"github.com/irfansharif/foldlock/internal/pattern"
)

func buildDesigns(t *testing.T) []*app.Design {
	t.Helper()
	a := app.New()
	built, err := a.BuildAll([]app.DesignSpec{
		{Name: "box", Config: pattern.Config{Shape: pattern.Box, Width: 5, Height: 3, Depth: 5, Thickness: 0.5}},
		{Name: "tiny", Config: pattern.Config{Shape: pattern.Pyramid, Width: 1, Height: 1, Depth: 1, Thickness: 2}},
	})
	require.NoError(t, err)
	return built
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, textOutput{verbose: true}.write(&buf, buildDesigns(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "PASS  box"), out)
	assert.Contains(t, out, "FAIL  tiny")
	assert.Contains(t, out, "error: expected tab depth")
	assert.Contains(t, out, "triangles")
	assert.Contains(t, out, "legend:")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonOutput{}.write(&buf, buildDesigns(t)))

	var got []struct {
		Name   string         `json:"name"`
		Folds  map[string]int `json:"folds"`
		Faces  int            `json:"faces"`
		Report struct {
			Overall   bool `json:"overall"`
			TabDesign struct {
				Status string `json:"status"`
			} `json:"tabDesign"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.True(t, got[0].Report.Overall)
	assert.Equal(t, 6, got[0].Faces)
	assert.Equal(t, 10, got[0].Folds["mountain"])
	assert.False(t, got[1].Report.Overall)
	assert.Equal(t, "failed", got[1].Report.TabDesign.Status)
}
