// Package approx is the opt-in tolerant comparison scope for fps values.
//
// Frequencies that travel through a period conversion pick up rounding
// error, so two Fps meant to carry the same physical rate generally differ
// by a small epsilon. Code that compares rates for scheduling must import
// this package and use its predicates; comparing bare Fps values with ==
// stays exact, so the two semantics cannot be mixed up by accident.
//
//	fps60 := fps.FromValue(60)
//	fromPeriod := fps.FromPeriodNanos(16_666_667)
//	approx.Eq(fps60, fromPeriod)  // true
//	fps60 == fromPeriod           // false
package approx

import (
	"math"

	"fps"
)

// Eq reports tolerant equality. Not an equivalence relation; see
// fps.IsApproxEqual.
func Eq(a, b fps.Fps) bool { return fps.IsApproxEqual(a, b) }

func Ne(a, b fps.Fps) bool { return !fps.IsApproxEqual(a, b) }

// Lt reports tolerant ordering. Not a strict weak order; see
// fps.IsApproxLess.
func Lt(a, b fps.Fps) bool { return fps.IsApproxLess(a, b) }

func Gt(a, b fps.Fps) bool { return fps.IsApproxLess(b, a) }

func Le(a, b fps.Fps) bool { return !fps.IsApproxLess(b, a) }

func Ge(a, b fps.Fps) bool { return !fps.IsApproxLess(a, b) }

// RangeEq compares ranges bound-wise under the tolerant equality.
func RangeEq(a, b fps.FpsRange) bool {
	return fps.IsApproxEqual(a.Min, b.Min) && fps.IsApproxEqual(a.Max, b.Max)
}

// RangesEq compares paired ranges field-wise under the tolerant equality.
func RangesEq(a, b fps.FpsRanges) bool {
	return RangeEq(a.Physical, b.Physical) && RangeEq(a.Render, b.Render)
}

// Div returns how many whole cycles of b fit in one cycle of a. The small
// bias keeps a ratio sitting just above an integer boundary from rounding
// up, so 60/60 is 1 even when both sides carry conversion noise.
// Meaningless when b is the zero rate; callers guard.
func Div(a, b fps.Fps) uint {
	return uint(math.Ceil(a.Value()/b.Value() - 0.00001))
}
