/*
Package daltonize simulates protan-type color vision deficiency and computes
compensating color corrections that keep red/green information visible to an
affected observer.

The color math lives in three sub-packages: colorspace (sRGB <-> linear RGB
<-> LMS conversions), simulate (dichromacy models) and correct (compensating
heuristics). This package ties them together into a per-pixel pipeline over
any image.Image, and provides image loading/saving plus side-by-side
comparison output for judging a correction.
*/
package daltonize

import "fmt"

type DaltonizeVersion struct {
	Major, Minor, Patch uint
}

func (v DaltonizeVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v DaltonizeVersion) Equal(o DaltonizeVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

var Version = DaltonizeVersion{0, 1, 0}
