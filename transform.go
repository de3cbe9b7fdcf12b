package daltonize

import (
	"fmt"
	"image"

	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

// The transforms below exist to apply EXIF orientation flags after decoding.
// Each returns a new *NRGB and leaves the source untouched; alpha is
// discarded since the pipeline works on opaque images.

func transformed(src image.Image, w, h int, at func(x, y int) (int, int)) *NRGB {
	b := src.Bounds()
	dst := NewNRGB(image.Rect(0, 0, w, h))
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			row := dst.Pix[dst.Stride*y:]
			for x := range w {
				sx, sy := at(x, y)
				c := NRGBModel.Convert(src.At(b.Min.X+sx, b.Min.Y+sy)).(NRGBColor)
				s := row[3*x : 3*x+3 : 3*x+3]
				s[0], s[1], s[2] = c.R, c.G, c.B
			}
		}
	}
	// transforms are only used on freshly decoded images, errors cannot occur
	_ = parallel.Run_in_parallel_over_range(0, f, 0, h)
	return dst
}

// FlipH flips the image horizontally (left to right).
func FlipH(src image.Image) *NRGB {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transformed(src, w, h, func(x, y int) (int, int) { return w - 1 - x, y })
}

// FlipV flips the image vertically (top to bottom).
func FlipV(src image.Image) *NRGB {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transformed(src, w, h, func(x, y int) (int, int) { return x, h - 1 - y })
}

// Rotate90 rotates the image 90 degrees counter-clockwise.
func Rotate90(src image.Image) *NRGB {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transformed(src, h, w, func(x, y int) (int, int) { return w - 1 - y, x })
}

// Rotate180 rotates the image 180 degrees.
func Rotate180(src image.Image) *NRGB {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transformed(src, w, h, func(x, y int) (int, int) { return w - 1 - x, h - 1 - y })
}

// Rotate270 rotates the image 270 degrees counter-clockwise.
func Rotate270(src image.Image) *NRGB {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transformed(src, h, w, func(x, y int) (int, int) { return y, h - 1 - x })
}

// Transpose flips the image across its main diagonal.
func Transpose(src image.Image) *NRGB {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transformed(src, h, w, func(x, y int) (int, int) { return y, x })
}

// Transverse flips the image across its anti-diagonal.
func Transverse(src image.Image) *NRGB {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transformed(src, h, w, func(x, y int) (int, int) { return w - 1 - y, h - 1 - x })
}
