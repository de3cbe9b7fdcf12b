package colorspace

import (
	"sync"
)

var encoded8ToLinearLUT = sync.OnceValue(func() []float64 {
	ans := make([]float64, 256)
	for i := range ans {
		ans[i] = encodedToLinear(float64(i) / 255)
	}
	return ans
})

// From8Bit converts an 8-bit sRGB encoded value to a normalised linear value
// between 0.0 and 1.0.
//
// This implementation uses a fast look-up table without sacrificing accuracy.
func From8Bit(v uint8) float64 {
	return encoded8ToLinearLUT()[v]
}

// To8Bit converts a linear value to an 8-bit sRGB encoded value, clipping the
// encoded result to between 0.0 and 1.0 before quantising.
func To8Bit(v float64) uint8 {
	return uint8(clamp01(linearToEncoded(v))*255 + 0.5)
}
