package fps

import "math"

// |||||| COMPARE ||||||

// approxThreshold is the absolute tolerance under which two rates count as
// the same, sized to absorb the rounding picked up by a frequency/period
// round trip. It is a fixed threshold and so does not scale with magnitude;
// kept as-is for compatibility with existing tooling.
const approxThreshold = 0.001

// IsStrictlyLess compares raw frequency values. It is a building block for
// the tolerant predicates; ordering rates that may have traveled through a
// period conversion belongs to the approx package.
func IsStrictlyLess(a, b Fps) bool {
	return a.Value() < b.Value()
}

// IsApproxEqual reports whether two rates are within approxThreshold of
// each other. Does not satisfy an equivalence relation: transitivity can
// fail for chains of values near the threshold.
func IsApproxEqual(a, b Fps) bool {
	return math.Abs(a.Value()-b.Value()) < approxThreshold
}

// IsApproxLess reports whether a is below b by more than the tolerance.
// Does not satisfy a strict weak order.
func IsApproxLess(a, b Fps) bool {
	return IsStrictlyLess(a, b) && !IsApproxEqual(a, b)
}
