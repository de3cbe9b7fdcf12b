package correct

import (
	"fmt"
	"testing"

	"github.com/kovidgoyal/daltonize/colorspace"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestVariantFromName(t *testing.T) {
	for _, name := range []string{"v1", "v2", "v3"} {
		v, err := VariantFromName(name)
		require.NoError(t, err)
		require.Equal(t, name, v.String())
	}
	_, err := VariantFromName("v4")
	require.ErrorContains(t, err, "unsupported correction variant")
}

func TestParamsFromMap(t *testing.T) {
	p, err := ParamsFromMap(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultParams(), p)

	p, err = ParamsFromMap(map[string]float64{"red_to_blue": 1.5, "green_to_blue": 0.0})
	require.NoError(t, err)
	require.Equal(t, 1.5, p.RedToBlue)
	require.Equal(t, 0.0, p.GreenToBlue)
	require.Equal(t, 0.8, p.BlueStrength, "unrelated keys keep their defaults")

	_, err = ParamsFromMap(map[string]float64{"red_to_bleu": 1})
	require.ErrorContains(t, err, "unknown correction parameter")
}

func TestV1PureRed(t *testing.T) {
	got, err := Correct(colorspace.Linear{1, 0, 0}, V1, DefaultParams())
	require.NoError(t, err)
	// redness = 1, blue += 0.8
	require.Equal(t, colorspace.Linear{1, 0, 0.8}, got)
}

func TestV1PureGreenUnchanged(t *testing.T) {
	// redness = -1 is below the default threshold of 0, so nothing happens.
	got, err := Correct(colorspace.Linear{0, 1, 0}, V1, DefaultParams())
	require.NoError(t, err)
	require.Equal(t, colorspace.Linear{0, 1, 0}, got)
}

func TestV1Threshold(t *testing.T) {
	p := DefaultParams()
	p.RednessThreshold = 0.5
	got, err := Correct(colorspace.Linear{0.6, 0.2, 0}, V1, p)
	require.NoError(t, err)
	require.Equal(t, colorspace.Linear{0.6, 0.2, 0}, got, "redness 0.4 is below the threshold")

	got, err = Correct(colorspace.Linear{0.9, 0.2, 0}, V1, p)
	require.NoError(t, err)
	require.InDelta(t, 0.8*0.7, got[2], 1e-12)
}

func TestV2RedAndGreenShifts(t *testing.T) {
	p := DefaultParams()

	// Pure red: redness 1, no greenness.
	got, err := Correct(colorspace.Linear{1, 0, 0}, V2, p)
	require.NoError(t, err)
	require.Equal(t, colorspace.Linear{1, 0, 0.8}, got)

	// Pure green: greenness 1, red delta clamps at zero.
	got, err = Correct(colorspace.Linear{0, 1, 0}, V2, p)
	require.NoError(t, err)
	require.InDelta(t, 0.3, got[2], 1e-12)
	require.Equal(t, 0.0, got[0])
	require.Equal(t, 1.0, got[1])
}

func TestV2BlueSuppressesGreenness(t *testing.T) {
	// g <= b, so greenness is zero and the pixel passes through.
	got, err := Correct(colorspace.Linear{0, 0.5, 0.6}, V2, DefaultParams())
	require.NoError(t, err)
	require.Equal(t, colorspace.Linear{0, 0.5, 0.6}, got)
}

func TestV3PureRedBecomesMagenta(t *testing.T) {
	// is_reddish: 1 > 0 and 1 > 0, redness 1, blue += 1.0, clamped.
	got, err := Correct(colorspace.Linear{1, 0, 0}, V3, DefaultParams())
	require.NoError(t, err)
	require.Equal(t, colorspace.Linear{1, 0, 1}, got)
}

func TestV3MaskedLocality(t *testing.T) {
	// Neither mask fires on these colors, so the defaults must return the
	// input exactly.
	testCases := []struct {
		name string
		c    colorspace.Linear
	}{
		{"black", colorspace.Linear{0, 0, 0}},
		{"white", colorspace.Linear{1, 1, 1}},
		{"pure blue", colorspace.Linear{0, 0, 1}},
		{"red below blue gate", colorspace.Linear{0.6, 0.1, 0.5}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Correct(tc.c, V3, DefaultParams())
			require.NoError(t, err)
			require.Equal(t, tc.c, got)
		})
	}
}

func TestV3GreenToCyan(t *testing.T) {
	got, err := Correct(colorspace.Linear{0, 1, 0}, V3, DefaultParams())
	require.NoError(t, err)
	// greenness = 1 - max(0, 0) = 1, blue += 0.5
	require.Equal(t, colorspace.Linear{0, 1, 0.5}, got)
}

func TestV3SaturationBoostIsNoOp(t *testing.T) {
	a := DefaultParams()
	b := DefaultParams()
	b.SaturationBoost = 3.7
	for _, c := range []colorspace.Linear{{1, 0, 0}, {0, 1, 0}, {0.5, 0.3, 0.1}} {
		x, err := Correct(c, V3, a)
		require.NoError(t, err)
		y, err := Correct(c, V3, b)
		require.NoError(t, err)
		require.Equal(t, x, y)
	}
}

func TestOutputAlwaysInRange(t *testing.T) {
	p := DefaultParams()
	p.RedToBlue = 5
	for _, v := range []Variant{V1, V2, V3} {
		got, err := Correct(colorspace.Linear{1, 0, 0.1}, v, p)
		require.NoError(t, err)
		for i := range 3 {
			require.GreaterOrEqual(t, got[i], 0.0)
			require.LessOrEqual(t, got[i], 1.0)
		}
	}
}

func TestUnknownVariant(t *testing.T) {
	_, err := Correct(colorspace.Linear{}, Variant(42), Params{})
	require.ErrorContains(t, err, "unsupported correction variant")
}
