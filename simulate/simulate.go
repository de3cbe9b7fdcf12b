package simulate

import (
	"fmt"

	"github.com/kovidgoyal/daltonize/colorspace"
)

// This package models how a protanope (an observer lacking functional
// long-wavelength cones) perceives a color. Three interchangeable models are
// provided; all take linear RGB and return linear RGB. Results can land
// outside [0,1] and are clamped by the pipeline, not here: keeping the math
// and the display-range policy separate lets callers compose models freely.

// Variant selects one of the simulation models.
type Variant int

const (
	// Strict replaces the L cone response with min(L, M): the deficient
	// long-wavelength signal can never exceed the medium-wavelength one.
	Strict Variant = iota
	// Blend interpolates L toward M by Strength, again never increasing the
	// apparent long-wavelength response above the true L.
	Blend
	// Machado applies an empirically fit 3x3 matrix directly to linear RGB,
	// with no LMS round trip.
	Machado
)

var variantNames = map[Variant]string{
	Strict:  "strict",
	Blend:   "blend",
	Machado: "machado",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// VariantFromName maps a variant name ("strict", "blend" or "machado") to
// its Variant. Unknown names are an error, never a silent fallback.
func VariantFromName(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unsupported simulation variant: %q", name)
}

// Params holds the tunable knobs for the simulation models. Only Blend
// consumes any: Strength in [0,1] controls how far L is pulled toward M.
type Params struct {
	Strength float64
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{Strength: 1.0}
}

// ParamsFromMap builds Params from named keys, applying defaults for keys
// that are absent. Unknown keys are rejected so that a typo cannot silently
// run with defaults.
func ParamsFromMap(m map[string]float64) (Params, error) {
	p := DefaultParams()
	for k, v := range m {
		switch k {
		case "strength":
			p.Strength = v
		default:
			return Params{}, fmt.Errorf("unknown simulation parameter: %q", k)
		}
	}
	return p, nil
}

// Protanopia (Machado et al.), fit directly in linear RGB.
var machadoMatrix = colorspace.Mat3{
	{0.152286, 1.052583, -0.204868},
	{0.114503, 0.786281, 0.099216},
	{-0.003882, -0.048116, 1.051998},
}

// Simulate maps a linear RGB color to the color a protanope would perceive,
// using the given model. The result is not clamped to [0,1].
func Simulate(c colorspace.Linear, variant Variant, params Params) (colorspace.Linear, error) {
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
	case Strict:
		return simulateStrict, nil
	case Blend:
		strength := params.Strength
		return func(c colorspace.Linear) colorspace.Linear { return simulateBlend(c, strength) }, nil
	case Machado:
		return simulateMachado, nil
	}
	return nil, fmt.Errorf("unsupported simulation variant: %d", int(variant))
}

func simulateStrict(c colorspace.Linear) colorspace.Linear {
	lms := colorspace.RGBToLMS(c)
	lms[0] = min(lms[0], lms[1])
	return colorspace.LMSToRGB(lms)
}

func simulateBlend(c colorspace.Linear, strength float64) colorspace.Linear {
	lms := colorspace.RGBToLMS(c)
	// Interpolate toward M, but only ever reduce the L response.
	blended := lms[0]*(1-strength) + lms[1]*strength
	lms[0] = min(lms[0], blended)
	return colorspace.LMSToRGB(lms)
}

func simulateMachado(c colorspace.Linear) colorspace.Linear {
	return colorspace.Linear{
		machadoMatrix[0][0]*c[0] + machadoMatrix[0][1]*c[1] + machadoMatrix[0][2]*c[2],
		machadoMatrix[1][0]*c[0] + machadoMatrix[1][1]*c[1] + machadoMatrix[1][2]*c[2],
		machadoMatrix[2][0]*c[0] + machadoMatrix[2][1]*c[1] + machadoMatrix[2][2]*c[2],
	}
}
