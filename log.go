package fps

import "go.uber.org/zap/zapcore"

// |||||| ZAP ||||||

// MarshalLogObject implements zapcore.ObjectMarshaler so pipeline call
// sites log rates as structured fields rather than flat strings.
func (f Fps) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("value", f.value)
	enc.AddInt64("periodNs", f.period)
	return nil
}

func (r FpsRange) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject("min", r.Min); err != nil {
		return err
	}
	return enc.AddObject("max", r.Max)
}

func (r FpsRanges) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject("physical", r.Physical); err != nil {
		return err
	}
	return enc.AddObject("render", r.Render)
}
