package fps

// |||||| RANGE ||||||

// FpsRange is an inclusive interval of frame rates. The type does not
// enforce Min <= Max; callers construct sane ranges. Containment uses the
// tolerant predicates so a rate sitting a rounding error outside a bound
// still counts as inside.
type FpsRange struct {
	Min Fps
	Max Fps
}

// FpsRangeAll is the unconstrained range, from the zero rate to FpsMax.
// Prefer it over the zero FpsRange, whose Max admits nothing.
var FpsRangeAll = FpsRange{Min: Fps{}, Max: FpsMax}

// Includes reports whether f falls within the range.
func (r FpsRange) Includes(f Fps) bool {
	return !IsApproxLess(f, r.Min) && !IsApproxLess(r.Max, f)
}

// IncludesRange reports whether the range fully covers other.
func (r FpsRange) IncludesRange(other FpsRange) bool {
	return !IsApproxLess(other.Min, r.Min) && !IsApproxLess(r.Max, other.Max)
}

// |||||| RANGES ||||||

// FpsRanges couples the rates a display mode can run at with the rates
// frames are actually produced at.
type FpsRanges struct {
	// Physical is the range of refresh rates the display mode setting can
	// sustain.
	Physical FpsRange

	// Render is the range of rates frames are swapped at. It is bounded
	// above by the physical range; Valid checks that.
	Render FpsRange
}

// Valid reports whether the render range stays within what the physical
// range can sustain.
func (r FpsRanges) Valid() bool {
	return !IsApproxLess(r.Physical.Max, r.Render.Max)
}
