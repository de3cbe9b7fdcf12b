package daltonize

import (
	"fmt"
	"image"
	"time"

	"github.com/kettek/apng"
)

var _ = fmt.Print

// SaveFlipbook writes the given frames as an animated PNG that cycles
// through them forever, holding each for delay. Flipping between the
// original, simulated and corrected renderings of the same image makes the
// differences between correction parameters much easier to see than
// side-by-side panels. All frames must share the same dimensions.
func SaveFlipbook(filename string, delay time.Duration, frames ...image.Image) error {
	if len(frames) == 0 {
		return fmt.Errorf("a flipbook needs at least one frame")
	}
	w, h := frames[0].Bounds().Dx(), frames[0].Bounds().Dy()
	a := apng.APNG{Frames: make([]apng.Frame, len(frames)), LoopCount: 0}
	for i, img := range frames {
		if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
			return fmt.Errorf("flipbook frames have mismatched sizes: %dx%d vs %dx%d",
				w, h, img.Bounds().Dx(), img.Bounds().Dy())
		}
		a.Frames[i] = apng.Frame{
			Image:            img,
			DelayNumerator:   uint16(delay.Milliseconds()),
			DelayDenominator: 1000,
		}
	}
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	err = apng.Encode(file, a)
	errc := file.Close()
	if err == nil {
		err = errc
	}
	return err
}
