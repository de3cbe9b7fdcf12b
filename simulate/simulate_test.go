package simulate

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/kovidgoyal/daltonize/colorspace"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestVariantFromName(t *testing.T) {
	for _, name := range []string{"strict", "blend", "machado"} {
		v, err := VariantFromName(name)
		require.NoError(t, err)
		require.Equal(t, name, v.String())
	}
	_, err := VariantFromName("tritanopia")
	require.ErrorContains(t, err, "unsupported simulation variant")
}

func TestParamsFromMap(t *testing.T) {
	p, err := ParamsFromMap(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultParams(), p)

	p, err = ParamsFromMap(map[string]float64{"strength": 0.5})
	require.NoError(t, err)
	require.Equal(t, 0.5, p.Strength)

	_, err = ParamsFromMap(map[string]float64{"strenght": 0.5})
	require.ErrorContains(t, err, "unknown simulation parameter")
}

func TestStrictPureRed(t *testing.T) {
	// Encoded pure red is linear (1,0,0); its LMS is (0.31399022,
	// 0.15537241, 0.01775239), so the strict model takes L down to M and the
	// resulting linear RGB is a desaturated brownish color, not bright red.
	got, err := Simulate(colorspace.Linear{1, 0, 0}, Strict, Params{})
	require.NoError(t, err)
	want := colorspace.LMSToRGB(colorspace.LMS{0.15537241, 0.15537241, 0.01775239})
	for i := range 3 {
		require.InDelta(t, want[i], got[i], 1e-9)
	}
	require.InDelta(t, 0.13200971, got[0], 1e-6)
	require.InDelta(t, 0.17848341, got[1], 1e-6)
	require.InDelta(t, -0.00472707, got[2], 1e-6)
	// Far from bright red: once clamped and re-encoded this is a dark
	// desaturated brown.
	require.Less(t, got[0], 0.2)
}

func TestStrictNeverIncreasesL(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 1000 {
		c := colorspace.Linear{rng.Float64(), rng.Float64(), rng.Float64()}
		got, err := Simulate(c, Strict, Params{})
		require.NoError(t, err)
		require.LessOrEqual(t, colorspace.RGBToLMS(got)[0], colorspace.RGBToLMS(c)[0]+1e-6)
	}
}

func TestBlendMonotoneInStrength(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for range 200 {
		c := colorspace.Linear{rng.Float64(), rng.Float64(), rng.Float64()}
		trueL := colorspace.RGBToLMS(c)[0]
		prev := math.Inf(1)
		for s := 0.0; s <= 1.0+1e-9; s += 0.1 {
			got, err := Simulate(c, Blend, Params{Strength: s})
			require.NoError(t, err)
			l := colorspace.RGBToLMS(got)[0]
			require.LessOrEqual(t, l, trueL+1e-6, "simulated L exceeds the true L at strength %g", s)
			require.LessOrEqual(t, l, prev+1e-6, "simulated L increased as strength went up to %g", s)
			prev = l
		}
	}
}

func TestBlendZeroStrengthIsIdentity(t *testing.T) {
	c := colorspace.Linear{0.7, 0.2, 0.4}
	got, err := Simulate(c, Blend, Params{Strength: 0})
	require.NoError(t, err)
	for i := range 3 {
		require.InDelta(t, c[i], got[i], 1e-4)
	}
}

func TestBlendFullStrengthMatchesStrict(t *testing.T) {
	// At strength 1 the blended candidate is exactly M, so min(L, candidate)
	// coincides with the strict model's min(L, M).
	rng := rand.New(rand.NewSource(9))
	for range 200 {
		c := colorspace.Linear{rng.Float64(), rng.Float64(), rng.Float64()}
		blend, err := Simulate(c, Blend, Params{Strength: 1})
		require.NoError(t, err)
		strict, err := Simulate(c, Strict, Params{})
		require.NoError(t, err)
		for i := range 3 {
			require.InDelta(t, strict[i], blend[i], 1e-9)
		}
	}
}

func TestMachadoNeutralAxis(t *testing.T) {
	// A protanopia matrix should keep grays close to gray: its rows each sum
	// to roughly 1.
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		got, err := Simulate(colorspace.Linear{v, v, v}, Machado, Params{})
		require.NoError(t, err)
		for i := range 3 {
			require.InDelta(t, v, got[i], 0.01)
		}
	}
}

func TestMachadoCanLeaveRange(t *testing.T) {
	// The matrix has negative coefficients, so some inputs produce values
	// outside [0,1]; clamping is the caller's job.
	got, err := Simulate(colorspace.Linear{0, 0, 1}, Machado, Params{})
	require.NoError(t, err)
	require.Less(t, got[0], 0.0)
}

func TestUnknownVariant(t *testing.T) {
	_, err := Simulate(colorspace.Linear{}, Variant(99), Params{})
	require.ErrorContains(t, err, "unsupported simulation variant")
}
