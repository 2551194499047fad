// Package noiselevel maps the three named noise intensities to the numeric
// parameters used by the text and image engines.
package noiselevel

import (
	"golang.org/x/text/cases"

	"github.com/wudi/noisekit/noiseerr"
)

// Tier is a fixed noise intensity.
type Tier int

const (
	Low Tier = iota + 1
	Medium
	High
)

var tierNames = [...]string{
	Low:    "low",
	Medium: "medium",
	High:   "high",
}

// Fraction of original characters targeted for modification.
var textFractions = [...]float64{
	Low:    0.05,
	Medium: 0.15,
	High:   0.25,
}

// Gaussian sigma, identical on both axes.
var blurSigmas = [...]float64{
	Low:    1.0,
	Medium: 3.0,
	High:   6.0,
}

// Fraction of the image area covered by the occlusion patch.
var occlusionRatios = [...]float64{
	Low:    0.08,
	Medium: 0.20,
	High:   0.40,
}

// Tiers returns every tier from weakest to strongest.
func Tiers() []Tier { return []Tier{Low, Medium, High} }

// Parse resolves a tier name case-insensitively.
func Parse(name string) (Tier, error) {
	folded := cases.Fold().String(name)
	for _, t := range Tiers() {
		if tierNames[t] == folded {
			return t, nil
		}
	}
	return 0, noiseerr.InvalidArgument("unknown noise tier %q (choose from low, medium, high)", name)
}

// Valid reports whether t is one of the defined tiers.
func (t Tier) Valid() bool { return t >= Low && t <= High }

func (t Tier) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return tierNames[t]
}

// TextFraction is the share of characters modified by the text engine.
func (t Tier) TextFraction() float64 {
	if !t.Valid() {
		return 0
	}
	return textFractions[t]
}

// BlurSigma is the Gaussian spread used by the blur operation.
func (t Tier) BlurSigma() float64 {
	if !t.Valid() {
		return 0
	}
	return blurSigmas[t]
}

// OcclusionRatio is the target area ratio of the occlusion patch.
func (t Tier) OcclusionRatio() float64 {
	if !t.Valid() {
		return 0
	}
	return occlusionRatios[t]
}
