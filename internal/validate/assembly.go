package validate

import (
	"github.com/irfansharif/foldlock/internal/gen"
	"github.com/irfansharif/foldlock/internal/pattern"
)

const (
	// minFeatureFactor is the smallest cuttable feature, in multiples of the
	// material thickness.
	minFeatureFactor = 5
	// thicknessWarnRatio is the thickness, as a fraction of the smallest
	// dimension, above which folds start to bind.
	thicknessWarnRatio = 0.1
)

// TabDesignDetails is the Details payload of the tab design result.
type TabDesignDetails struct {
	Shape            pattern.Shape `json:"shape"`
	Coefficient      float64       `json:"coefficient"`
	ExpectedTabDepth float64       `json:"expectedTabDepth"`
	MinFeatureSize   float64       `json:"minFeatureSize"`
	TuckSlitLength   float64       `json:"tuckSlitLength,omitempty"`
}

// TabDesign checks that the tabs generated for cfg are deep enough to be cut
// from material of the configured thickness.
func TabDesign(cfg pattern.Config) Result {
	res := newResult("tab-design")
	coeff, err := gen.TabCoefficient(cfg.Shape)
	if err != nil {
		res.errorf("%v", err)
		return res.finish()
	}
	depth, err := gen.TabDepth(cfg)
	if err != nil {
		res.errorf("%v", err)
		return res.finish()
	}
	details := TabDesignDetails{
		Shape:            cfg.Shape,
		Coefficient:      coeff,
		ExpectedTabDepth: depth,
		MinFeatureSize:   cfg.ThicknessCM() * minFeatureFactor,
	}

	if cfg.Shape == pattern.Envelope {
		details.TuckSlitLength = gen.TuckSlitLength(cfg)
		res.warnf("envelope has no locking tabs; checking the tuck slit instead")
		if details.TuckSlitLength < details.MinFeatureSize {
			res.errorf("tuck slit length %.3f cm is below the minimum feature size %.3f cm",
				details.TuckSlitLength, details.MinFeatureSize)
		}
	} else if depth < details.MinFeatureSize {
		res.errorf("expected tab depth %.3f cm is below the minimum feature size %.3f cm (thickness × %d)",
			depth, details.MinFeatureSize, minFeatureFactor)
	}
	res.Details = details
	return res.finish()
}

// ThicknessDetails is the Details payload of the thickness result.
type ThicknessDetails struct {
	ThicknessCM       float64 `json:"thicknessCm"`
	SmallestDimension float64 `json:"smallestDimension"`
	Ratio             float64 `json:"ratio"`
	MinFoldRadius     float64 `json:"minFoldRadius"`
}

// Thickness warns when the material is thick relative to the solid.
func Thickness(cfg pattern.Config) Result {
	res := newResult("thickness")
	smallest, err := gen.SmallestDimension(cfg)
	if err != nil {
		res.errorf("%v", err)
		return res.finish()
	}
	if !(cfg.Thickness > 0) {
		res.errorf("thickness %g mm is not positive", cfg.Thickness)
		return res.finish()
	}
	t := cfg.ThicknessCM()
	details := ThicknessDetails{
		ThicknessCM:       t,
		SmallestDimension: smallest,
		Ratio:             t / smallest,
		MinFoldRadius:     t / 2,
	}
	if t > thicknessWarnRatio*smallest {
		res.warnf("thickness %.3f cm exceeds %.0f%% of the smallest dimension %.3f cm; folds may not close",
			t, thicknessWarnRatio*100, smallest)
	}
	res.Details = details
	return res.finish()
}

// PairingDetails is the Details payload of the tab-slit pairing result.
type PairingDetails struct {
	Mountains int `json:"mountains"`
	Cuts      int `json:"cuts"`
}

// TabSlitPairing counts mountain folds against cut lines. It does not match
// individual tabs to slits, so it always reports Unchecked.
func TabSlitPairing(p *pattern.Pattern) Result {
	res := newResult("tab-slit-pairing")
	res.Status = Unchecked
	d := PairingDetails{Mountains: p.Count(pattern.Mountain), Cuts: p.Count(pattern.Cut)}
	res.warnf("tab/slit pairing is not verified geometrically; counted %d mountain folds and %d cut lines",
		d.Mountains, d.Cuts)
	res.Details = d
	return res.finish()
}
