package fps

import (
	"math"
	"time"
)

// |||||| FPS ||||||

// Fps is a frame rate in cycles per second, stored together with its period
// in nanoseconds. Both representations are kept so either can be read
// without re-dividing, and because the two are linked by a rounded
// conversion: a rate built from a period will not reproduce a literal
// frequency bit-for-bit. Rates that are supposed to match therefore go
// through IsApproxEqual or the approx package, never through ==. Comparing
// bare Fps values with == stays exact.
//
// The zero Fps is the canonical "no rate" value. It is what the
// constructors return for non-positive input; nothing here treats it as an
// error.
type Fps struct {
	value  float64
	period int64
}

// FromValue builds a rate from a frequency in Hz.
func FromValue(frequency float64) Fps {
	// Not frequency <= 0: NaN must also degrade to the zero rate.
	if !(frequency > 0) {
		return Fps{}
	}
	return Fps{value: frequency, period: int64(math.Round(1e9 / frequency))}
}

// FromPeriodNanos builds a rate from the nanosecond gap between frames.
func FromPeriodNanos(period int64) Fps {
	if period <= 0 {
		return Fps{}
	}
	return Fps{value: 1e9 / float64(period), period: period}
}

// FromPeriod builds a rate from the duration between frames.
func FromPeriod(d time.Duration) Fps {
	return FromPeriodNanos(d.Nanoseconds())
}

// FpsMax is the largest representable rate, used as the upper bound of an
// unconstrained range. Its rounded period degenerates to zero nanoseconds.
var FpsMax = FromValue(math.MaxFloat64)

// IsValid reports whether the rate is a real rate rather than the zero
// "no rate" value.
func (f Fps) IsValid() bool { return f.value > 0 }

// Value returns the frequency in Hz, exactly as constructed.
func (f Fps) Value() float64 { return f.value }

// IntValue returns the frequency rounded to the nearest whole Hz.
func (f Fps) IntValue() int { return int(math.Round(f.value)) }

// Period returns the gap between frames.
func (f Fps) Period() time.Duration { return time.Duration(f.period) }

// PeriodNanos returns the gap between frames in nanoseconds, exactly as
// constructed.
func (f Fps) PeriodNanos() int64 { return f.period }

// Div returns the rate whose period is divisor times this one's, e.g. a
// 120 Hz rate divided by 2 is the 60 Hz rate sharing its alignment.
func (f Fps) Div(divisor uint) Fps {
	return FromPeriodNanos(f.period * int64(divisor))
}
