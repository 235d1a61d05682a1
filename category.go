package fps

// FrameRateCategory is the frame rate category of a layer, used by rate
// selection to rank content that has no explicit rate vote.
type FrameRateCategory int32

const (
	CategoryDefault FrameRateCategory = iota
	CategoryNoPreference
	CategoryLow
	CategoryNormal
	CategoryHighHint
	CategoryHigh
)

func (c FrameRateCategory) String() string {
	switch c {
	case CategoryDefault:
		return "Default"
	case CategoryNoPreference:
		return "NoPreference"
	case CategoryLow:
		return "Low"
	case CategoryNormal:
		return "Normal"
	case CategoryHighHint:
		return "HighHint"
	case CategoryHigh:
		return "High"
	default:
		return "Unknown"
	}
}
