package clip

import (
	"math"

	"github.com/gogpu/chartlayout"
)

// DashLength normalizes a dash period for the phase math.
// Zero, NaN and infinite lengths become 1 so the remainder is always
// defined, and the coercion is logged at debug level. Negative lengths use
// their magnitude.
func DashLength(d float64) float64 {
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		chartlayout.Logger().Debug("clip: dash length coerced to 1", "dash", d)
		return 1
	}
	return math.Abs(d)
}
