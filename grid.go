package daltonize

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/kovidgoyal/daltonize/simulate"
)

var _ = fmt.Print

// ComparisonGrid composes a 2x2 panel for judging a correction:
//
//	top-left:     original
//	top-right:    corrected
//	bottom-left:  simulated (what a protanope sees)
//	bottom-right: the corrected image re-simulated with the strict model
//	              (what a protanope sees after correction)
//
// A correction is useful when information visible in the top-left panel but
// lost in the bottom-left one survives in the bottom-right one. All three
// inputs must share the same dimensions.
func ComparisonGrid(original, simulated, corrected image.Image) (*NRGB, error) {
	w, h := original.Bounds().Dx(), original.Bounds().Dy()
	for _, img := range []image.Image{simulated, corrected} {
		if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
			return nil, fmt.Errorf("comparison images have mismatched sizes: %dx%d vs %dx%d",
				w, h, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
	resimulated, _, err := Run(corrected, &SimulateSpec{Variant: simulate.Strict}, nil)
	if err != nil {
		return nil, err
	}
	grid := NewNRGB(image.Rect(0, 0, 2*w, 2*h))
	paste := func(img image.Image, x, y int) {
		r := image.Rect(x, y, x+w, y+h)
		draw.Draw(grid, r, img, img.Bounds().Min, draw.Src)
	}
	paste(original, 0, 0)
	paste(corrected, w, 0)
	paste(simulated, 0, h)
	paste(resimulated, w, h)
	return grid, nil
}
