package fps_test

import (
	"fps"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Log", func() {
	It("Should marshal a rate as value and period fields", func() {
		enc := zapcore.NewMapObjectEncoder()
		Expect(fps.FromValue(60).MarshalLogObject(enc)).To(Succeed())
		Expect(enc.Fields["value"]).To(Equal(60.0))
		Expect(enc.Fields["periodNs"]).To(Equal(int64(16666667)))
	})
	It("Should marshal a range as nested bounds", func() {
		enc := zapcore.NewMapObjectEncoder()
		r := fps.FpsRange{Min: fps.FromValue(30), Max: fps.FromValue(90)}
		Expect(r.MarshalLogObject(enc)).To(Succeed())
		min := enc.Fields["min"].(map[string]interface{})
		max := enc.Fields["max"].(map[string]interface{})
		Expect(min["value"]).To(Equal(30.0))
		Expect(max["value"]).To(Equal(90.0))
	})
	It("Should marshal paired ranges under their labels", func() {
		enc := zapcore.NewMapObjectEncoder()
		rr := fps.FpsRanges{
			Physical: fps.FpsRange{Max: fps.FromValue(120)},
			Render:   fps.FpsRange{Max: fps.FromValue(60)},
		}
		Expect(rr.MarshalLogObject(enc)).To(Succeed())
		Expect(enc.Fields).To(HaveKey("physical"))
		Expect(enc.Fields).To(HaveKey("render"))
	})
})
