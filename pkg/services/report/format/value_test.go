package format

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	assert.Equal(t, int64(42), Int(float64(42)))
	assert.Equal(t, int64(42), Int("42"))
	assert.Equal(t, int64(42), Int("42.9"))
	assert.Equal(t, int64(42), Int(json.Number("42")))
	assert.Equal(t, int64(0), Int(nil))
	assert.Equal(t, int64(0), Int("not a number"))
	assert.Equal(t, int64(0), Int(map[string]any{}))
}

func TestFloat(t *testing.T) {
	assert.InDelta(t, 1.5, Float("1.5"), 0.001)
	assert.InDelta(t, 1.5, Float(1.5), 0.001)
	assert.Equal(t, float64(0), Float("x"))
	assert.Equal(t, float64(0), Float(nil))
}

func TestComma(t *testing.T) {
	assert.Equal(t, "1,234,567", Comma(1234567))
	assert.Equal(t, "0", Comma(0))
	assert.Equal(t, "-1,000", Comma(-1000))
}

func TestCommaFloat(t *testing.T) {
	assert.Equal(t, "1,234,568", CommaFloat(1234567.8, 0))
	assert.Equal(t, "1,234.5", CommaFloat(1234.52, 1))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "66.7%", Percent(2, 3))
	assert.Equal(t, "100.0%", Percent(5, 5))
	assert.Equal(t, "0.0%", Percent(5, 0), "zero denominator must not divide")
	assert.Equal(t, "0.0%", Percent(0, 0))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, "3.00", Ratio(45, 15))
	assert.Equal(t, "0.00", Ratio(45, 0), "zero denominator must not divide")
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "5小时12分钟 (18,720秒)", Duration(18720))
	assert.Equal(t, "0小时0分钟 (0秒)", Duration(0))
	assert.Equal(t, "0小时0分钟 (0秒)", Duration(-5))
}

func TestClock(t *testing.T) {
	assert.Equal(t, "01:01:05", Clock(3665))
	assert.Equal(t, "已完成", Clock(0))
	assert.Equal(t, "已完成", Clock(-1))
}

func TestScalar(t *testing.T) {
	assert.Equal(t, "1,234", Scalar(float64(1234)))
	assert.Equal(t, "1,234.5", Scalar("1234.52"))
	assert.Equal(t, "abc", Scalar("abc"))
	assert.Equal(t, "无数据", Scalar(nil))
	assert.Equal(t, "无数据", Scalar(""))
}
