package correct

import (
	"fmt"

	"github.com/kovidgoyal/daltonize/colorspace"
)

// This package computes compensating color shifts for protan-type vision:
// information carried by a red/green contrast is re-encoded onto the blue
// channel, which survives the deficiency. Three heuristics of increasing
// aggressiveness are provided; none is canonical, they are tunable hypotheses
// meant to be judged by re-simulating the corrected output and looking at it.
//
// All variants are additive: a per-channel delta is computed from the input,
// added to it, and the sum clamped to [0,1].

// Variant selects one of the correction heuristics.
type Variant int

const (
	// V1 adds blue in proportion to redness (R-G) wherever redness exceeds a
	// threshold. Reds drift toward magenta; everything else is untouched.
	V1 Variant = iota
	// V2 detects redness and greenness independently, pushes both into blue
	// and additionally subtracts some red from green pixels.
	V2
	// V3 is the strongest: boolean hue masks gate the corrections so that
	// borderline colors receive no partial shift at all.
	V3
)

var variantNames = map[Variant]string{
	V1: "v1",
	V2: "v2",
	V3: "v3",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// VariantFromName maps "v1", "v2" or "v3" to its Variant. Unknown names are
// an error, never a silent fallback.
func VariantFromName(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unsupported correction variant: %q", name)
}

// Params holds the knobs for all three variants; each variant reads only its
// own fields. Zero values are meaningful, so construct via DefaultParams or
// ParamsFromMap rather than from a struct literal.
type Params struct {
	// V1
	RednessThreshold float64
	BlueStrength     float64
	// V2
	RedBlueAdd   float64
	GreenBlueAdd float64
	GreenRedSub  float64
	// V3
	RedToBlue   float64
	RedToGreen  float64
	GreenToBlue float64
	// SaturationBoost is accepted for compatibility but currently has no
	// effect on the output; it is reserved for a future global scaling of
	// the correction vector.
	SaturationBoost float64
}

// DefaultParams returns the documented defaults for every variant.
func DefaultParams() Params {
	return Params{
		RednessThreshold: 0.0,
		BlueStrength:     0.8,
		RedBlueAdd:       0.8,
		GreenBlueAdd:     0.3,
		GreenRedSub:      0.2,
		RedToBlue:        1.0,
		RedToGreen:       0.0,
		GreenToBlue:      0.5,
		SaturationBoost:  1.0,
	}
}

var paramSetters = map[string]func(*Params, float64){
	"redness_threshold": func(p *Params, v float64) { p.RednessThreshold = v },
	"blue_strength":     func(p *Params, v float64) { p.BlueStrength = v },
	"red_blue_add":      func(p *Params, v float64) { p.RedBlueAdd = v },
	"green_blue_add":    func(p *Params, v float64) { p.GreenBlueAdd = v },
	"green_red_sub":     func(p *Params, v float64) { p.GreenRedSub = v },
	"red_to_blue":       func(p *Params, v float64) { p.RedToBlue = v },
	"red_to_green":      func(p *Params, v float64) { p.RedToGreen = v },
	"green_to_blue":     func(p *Params, v float64) { p.GreenToBlue = v },
	"saturation_boost":  func(p *Params, v float64) { p.SaturationBoost = v },
}

// ParamsFromMap builds Params from named keys, applying defaults for keys
// that are absent. Unknown keys are rejected so that a typo cannot silently
// run with defaults.
func ParamsFromMap(m map[string]float64) (Params, error) {
	p := DefaultParams()
	for k, v := range m {
		setter, ok := paramSetters[k]
		if !ok {
			return Params{}, fmt.Errorf("unknown correction parameter: %q", k)
		}
		setter(&p, v)
	}
	return p, nil
}

// Correct applies the chosen correction heuristic to a linear RGB color.
// The result is clamped to [0,1].
func Correct(c colorspace.Linear, variant Variant, params Params) (colorspace.Linear, error) {
	f, err := Compile(variant, params)
	if err != nil {
		return colorspace.Linear{}, err
	}
	return f(c), nil
}

// Compile resolves a variant and its parameters into a per-color function,
// so that bulk callers pay for variant dispatch once rather than per pixel.
func Compile(variant Variant, params Params) (func(colorspace.Linear) colorspace.Linear, error) {
	switch variant {
	case V1:
		return func(c colorspace.Linear) colorspace.Linear { return correctV1(c, params) }, nil
	case V2:
		return func(c colorspace.Linear) colorspace.Linear { return correctV2(c, params) }, nil
	case V3:
		return func(c colorspace.Linear) colorspace.Linear { return correctV3(c, params) }, nil
	}
	return nil, fmt.Errorf("unsupported correction variant: %d", int(variant))
}

func correctV1(c colorspace.Linear, p Params) colorspace.Linear {
	redness := c[0] - c[1]
	if redness > p.RednessThreshold {
		c[2] += p.BlueStrength * redness
	}
	return c.Clamp01()
}

func correctV2(c colorspace.Linear, p Params) colorspace.Linear {
	r, g, b := c[0], c[1], c[2]
	redness := max(0, r-g)
	// Suppress greenness when the pixel leans blue, so blue-ish colors are
	// not treated as green.
	greenness := max(0, g-max(r*0.8, b))
	c[2] += p.RedBlueAdd*redness + p.GreenBlueAdd*greenness
	c[0] -= p.GreenRedSub * greenness
	return c.Clamp01()
}

func correctV3(c colorspace.Linear, p Params) colorspace.Linear {
	r, g, b := c[0], c[1], c[2]
	var redness, greenness float64
	if r > g && r > b*1.5 {
		redness = r - g
	}
	if g > r*0.8 && g > b {
		greenness = g - max(r, b)
	}
	c[2] += p.RedToBlue*redness + p.GreenToBlue*greenness
	c[1] += p.RedToGreen * redness
	return c.Clamp01()
}
