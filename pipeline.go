package daltonize

import (
	"fmt"
	"image"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/daltonize/colorspace"
	"github.com/kovidgoyal/daltonize/correct"
	"github.com/kovidgoyal/daltonize/simulate"
)

var _ = fmt.Print

// SimulateSpec names a simulation model and its parameters.
type SimulateSpec struct {
	Variant simulate.Variant
	Params  simulate.Params
}

// CorrectSpec names a correction heuristic and its parameters.
type CorrectSpec struct {
	Variant correct.Variant
	Params  correct.Params
}

// SimulateSpecFromName builds a SimulateSpec from a variant name and a map
// of named parameters; missing keys take their defaults.
func SimulateSpecFromName(name string, params map[string]float64) (*SimulateSpec, error) {
	v, err := simulate.VariantFromName(name)
	if err != nil {
		return nil, err
	}
	p, err := simulate.ParamsFromMap(params)
	if err != nil {
		return nil, err
	}
	return &SimulateSpec{Variant: v, Params: p}, nil
}

// CorrectSpecFromName builds a CorrectSpec from a variant name and a map of
// named parameters; missing keys take their defaults.
func CorrectSpecFromName(name string, params map[string]float64) (*CorrectSpec, error) {
	v, err := correct.VariantFromName(name)
	if err != nil {
		return nil, err
	}
	p, err := correct.ParamsFromMap(params)
	if err != nil {
		return nil, err
	}
	return &CorrectSpec{Variant: v, Params: p}, nil
}

// Run applies the simulation and correction stages to an 8-bit encoded image
// and returns the two re-encoded results. Either spec may be nil, in which
// case the corresponding output is the input passed through the
// decode/encode round trip unchanged. The correction always starts from the
// original linear image, never from the simulated one. The input image is
// not modified.
//
// Every pixel is processed independently: normalise to [0,1], linearise,
// transform, clamp to [0,1], re-encode, quantise. Rows are processed in
// parallel.
func Run(img image.Image, simSpec *SimulateSpec, corrSpec *CorrectSpec) (simulated, corrected *NRGB, err error) {
	identity := func(c colorspace.Linear) colorspace.Linear { return c }
	simFn, corrFn := identity, identity
	if simSpec != nil {
		if simFn, err = simulate.Compile(simSpec.Variant, simSpec.Params); err != nil {
			return nil, nil, err
		}
	}
	if corrSpec != nil {
		if corrFn, err = correct.Compile(corrSpec.Variant, corrSpec.Params); err != nil {
			return nil, nil, err
		}
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	out := image.Rect(0, 0, width, height)
	simulated, corrected = NewNRGB(out), NewNRGB(out)

	process := func(sr, sg, sb uint8, dsim, dcorr []uint8) {
		lin := colorspace.Linear{colorspace.From8Bit(sr), colorspace.From8Bit(sg), colorspace.From8Bit(sb)}
		s := simFn(lin).Clamp01()
		c := corrFn(lin).Clamp01()
		dsim[0], dsim[1], dsim[2] = colorspace.To8Bit(s[0]), colorspace.To8Bit(s[1]), colorspace.To8Bit(s[2])
		dcorr[0], dcorr[1], dcorr[2] = colorspace.To8Bit(c[0]), colorspace.To8Bit(c[1]), colorspace.To8Bit(c[2])
	}

	var f func(start, limit int)
	switch src := img.(type) {
	case *NRGB:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.Stride*y:]
				srow := simulated.Pix[simulated.Stride*y:]
				crow := corrected.Pix[corrected.Stride*y:]
				_ = row[3*(width-1)]
				for range width {
					process(row[0], row[1], row[2], srow[0:3:3], crow[0:3:3])
					row, srow, crow = row[3:], srow[3:], crow[3:]
				}
			}
		}
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.Stride*y:]
				srow := simulated.Pix[simulated.Stride*y:]
				crow := corrected.Pix[corrected.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					process(row[0], row[1], row[2], srow[0:3:3], crow[0:3:3])
					row, srow, crow = row[4:], srow[3:], crow[3:]
				}
			}
		}
	case *image.RGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.Stride*y:]
				srow := simulated.Pix[simulated.Stride*y:]
				crow := corrected.Pix[corrected.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					r, g, b := row[0], row[1], row[2]
					if a := row[3]; a != 0 && a != 0xff {
						r, g, b = unpremultiply8(r, a), unpremultiply8(g, a), unpremultiply8(b, a)
					}
					process(r, g, b, srow[0:3:3], crow[0:3:3])
					row, srow, crow = row[4:], srow[3:], crow[3:]
				}
			}
		}
	default:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				srow := simulated.Pix[simulated.Stride*y:]
				crow := corrected.Pix[corrected.Stride*y:]
				for x := range width {
					r16, g16, b16, a16 := img.At(x+b.Min.X, y+b.Min.Y).RGBA()
					var r, g, bl uint8
					if a16 != 0 {
						r = uint8(unpremultiply(r16, a16) >> 8)
						g = uint8(unpremultiply(g16, a16) >> 8)
						bl = uint8(unpremultiply(b16, a16) >> 8)
					}
					process(r, g, bl, srow[0:3:3], crow[0:3:3])
					srow, crow = srow[3:], crow[3:]
				}
			}
		}
	}
	if err = parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
		return nil, nil, err
	}
	return simulated, corrected, nil
}

// Simulated is a convenience wrapper around Run for when only the simulated
// view is wanted.
func Simulated(img image.Image, spec SimulateSpec) (*NRGB, error) {
	sim, _, err := Run(img, &spec, nil)
	return sim, err
}

// Corrected is a convenience wrapper around Run for when only the corrected
// image is wanted.
func Corrected(img image.Image, spec CorrectSpec) (*NRGB, error) {
	_, corr, err := Run(img, nil, &spec)
	return corr, err
}

func unpremultiply8(r, a uint8) uint8 {
	return uint8((uint16(r) * 0xff) / uint16(a))
}

func unpremultiply(r, a uint32) uint16 {
	return uint16((r * 0xffff) / a)
}
