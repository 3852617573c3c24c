// Package validate checks generated patterns: the flat-foldability theorems
// at each interior vertex (Kawasaki-Justin, Maekawa, crimp reduction) and
// the assembly constraints of the configured material (tab depth, thickness,
// tab-slit pairing).
//
// Violations are data, not Go errors. Every validator returns a Result whose
// Errors and Warnings explain what failed, and Pattern gathers them into a
// Report.
package validate

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/irfansharif/foldlock/internal/pattern"
	"github.com/irfansharif/foldlock/internal/vertex"
)

// Pattern runs every validator over p, generated from cfg.
func Pattern(p *pattern.Pattern, cfg pattern.Config) Report {
	vs := vertex.Analyze(p.Folds)
	r := Report{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Pattern:   p.Name,
	}

	var g errgroup.Group
	for _, run := range []struct {
		dst *Result
		fn  func() Result
	}{
		{&r.KawasakiJustin, func() Result { return KawasakiJustin(vs) }},
		{&r.Maekawa, func() Result { return Maekawa(vs) }},
		{&r.VertexValidity, func() Result { return VertexValidity(vs) }},
		{&r.TabDesign, func() Result { return TabDesign(cfg) }},
		{&r.Thickness, func() Result { return Thickness(cfg) }},
		{&r.TabSlitPairing, func() Result { return TabSlitPairing(p) }},
	} {
		g.Go(func() error {
			*run.dst = run.fn()
			return nil
		})
	}
	_ = g.Wait()

	r.Overall = true
	for _, res := range r.Results() {
		r.Overall = r.Overall && res.Valid
	}
	return r
}
