package colorspace

import (
	"math"
)

// This package converts between the three color representations used by the
// dichromacy pipeline: gamma-encoded sRGB, linear RGB and LMS cone responses.
// Each representation gets its own triple type so that a value's color space
// is carried by the type system; passing an encoded triple to a function that
// expects linear values is a compile error, not a silent numeric bug.
//
// Notes:
// - Encoded channels are nominally in [0,1] (8-bit storage divided by 255).
// - Linear channels are nominally in [0,1] but simulation and correction
//   arithmetic can push them outside that range; callers clamp at the point
//   where values are stored or displayed.
// - The RGB<->LMS matrices are derived from the Smith & Pokorny cone
//   fundamentals; they are numerical inverses of each other to within 1e-4,
//   which is verified by the tests.

// Encoded is a gamma-encoded sRGB color triple in R, G, B order.
type Encoded [3]float64

// Linear is a linear-light RGB color triple in R, G, B order.
type Linear [3]float64

// LMS is a cone-response triple in L (long), M (medium), S (short) order.
type LMS [3]float64

type Mat3 [3][3]float64

// Linear RGB to LMS cone responses (Smith & Pokorny).
var rgbToLMS = Mat3{
	{0.31399022, 0.63951294, 0.04649755},
	{0.15537241, 0.75789446, 0.08670142},
	{0.01775239, 0.10944209, 0.87256922},
}

// LMS back to linear RGB, the numerical inverse of rgbToLMS.
var lmsToRGB = Mat3{
	{5.47221206, -4.64196010, 0.16963708},
	{-1.12524190, 2.29317094, -0.16789520},
	{0.02980165, -0.19318073, 1.16364789},
}

// ToLinear converts a gamma-encoded sRGB triple with channels in [0,1] to
// linear RGB using the standard sRGB electro-optical transfer function.
// Inputs outside [0,1] are not defended against: a negative channel raised to
// the fractional power yields NaN, so callers must normalise first.
func ToLinear(c Encoded) Linear {
	return Linear{encodedToLinear(c[0]), encodedToLinear(c[1]), encodedToLinear(c[2])}
}

// ToEncoded converts a linear RGB triple back to gamma-encoded sRGB. On the
// power branch each channel is clamped to [0.0001, 1.0] so the fractional
// power never sees a zero or negative base. The output is not clamped;
// callers clamp to [0,1] before quantising for storage.
func ToEncoded(c Linear) Encoded {
	return Encoded{linearToEncoded(c[0]), linearToEncoded(c[1]), linearToEncoded(c[2])}
}

// RGBToLMS converts linear RGB to LMS cone responses. Pure linear map, no
// clamping.
func RGBToLMS(c Linear) LMS {
	x, y, z := mulMat3Vec(rgbToLMS, c[0], c[1], c[2])
	return LMS{x, y, z}
}

// LMSToRGB converts LMS cone responses to linear RGB. The result can be
// outside [0,1] for LMS triples that do not correspond to a displayable
// color.
func LMSToRGB(c LMS) Linear {
	x, y, z := mulMat3Vec(lmsToRGB, c[0], c[1], c[2])
	return Linear{x, y, z}
}

// Clamp01 clamps every channel of a linear triple to [0,1].
func (c Linear) Clamp01() Linear {
	return Linear{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])}
}

// Clamp01 clamps every channel of an encoded triple to [0,1].
func (c Encoded) Clamp01() Encoded {
	return Encoded{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])}
}

func encodedToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToEncoded(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	// The clamp keeps the fractional power away from zero, negative and
	// above-range bases; it only applies on this branch so that small values
	// round-trip exactly.
	return 1.055*math.Pow(max(0.0001, min(v, 1.0)), 1.0/2.4) - 0.055
}

// clamp01 clamps value to [0,1]
func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

// Matrix & vector utilities

func mulMat3Vec(m Mat3, a, b, c float64) (x, y, z float64) {
	x = m[0][0]*a + m[0][1]*b + m[0][2]*c
	y = m[1][0]*a + m[1][1]*b + m[1][2]*c
	z = m[2][0]*a + m[2][1]*b + m[2][2]*c
	return
}

func mulMat3(a, b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}
