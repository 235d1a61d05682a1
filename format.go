package fps

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// |||||| FORMAT ||||||

// String renders the rate as "<value> Hz" with two decimals. Log tooling
// scrapes this format; ParseFps reads it back.
func (f Fps) String() string {
	return fmt.Sprintf("%.2f Hz", f.value)
}

func (r FpsRange) String() string {
	return fmt.Sprintf("[%s, %s]", r.Min, r.Max)
}

func (r FpsRanges) String() string {
	return fmt.Sprintf("{physical=%s, render=%s}", r.Physical, r.Render)
}

// |||||| PARSE ||||||

const hzSuffix = " Hz"

// ParseFps reads a rate rendered by Fps.String. Any number of decimal
// places is accepted. A non-positive value parses cleanly to the zero
// "no rate" Fps; only malformed text is an error.
func ParseFps(s string) (Fps, error) {
	if !strings.HasSuffix(s, hzSuffix) {
		return Fps{}, errors.Newf("fps: %q is missing the %q suffix", s, hzSuffix)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, hzSuffix), 64)
	if err != nil {
		return Fps{}, errors.Wrapf(err, "fps: parsing %q", s)
	}
	// ParseFloat accepts NaN and the infinities; no rate is non-finite.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Fps{}, errors.Newf("fps: %q is not a finite rate", s)
	}
	return FromValue(v), nil
}

// ParseFpsRange reads a range rendered by FpsRange.String.
func ParseFpsRange(s string) (FpsRange, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return FpsRange{}, errors.Newf("fps: %q is not a bracketed range", s)
	}
	bounds := strings.Split(s[1:len(s)-1], ", ")
	if len(bounds) != 2 {
		return FpsRange{}, errors.Newf("fps: %q does not have exactly two bounds", s)
	}
	min, err := ParseFps(bounds[0])
	if err != nil {
		return FpsRange{}, err
	}
	max, err := ParseFps(bounds[1])
	if err != nil {
		return FpsRange{}, err
	}
	return FpsRange{Min: min, Max: max}, nil
}
