package format

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Coercion helpers for the weakly typed payload values the vendor
// returns: counters arrive as float64, string or json.Number depending
// on the chart. Failures coerce to zero, never to an error.

// Int coerces a payload value to int64, defaulting to 0.
func Int(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return int64(f)
		}
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
	}
	return 0
}

// Float coerces a payload value to float64, defaulting to 0.
func Float(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return 0
}

// Str coerces a payload value to its string form.
func Str(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	default:
		return fmt.Sprintf("%v", s)
	}
}

// FieldInt reads payload[key] as an integer; absent keys are 0.
func FieldInt(payload map[string]any, key string) int64 {
	return Int(payload[key])
}

// Comma renders an integer with thousands separators.
func Comma(n int64) string {
	return humanize.Comma(n)
}

// CommaFloat renders a float with thousands separators and the given
// number of decimal places.
func CommaFloat(f float64, decimals int) string {
	return humanize.FormatFloat("#,###."+strings.Repeat("#", decimals), f)
}

// Percent renders num/den as a percentage with one decimal place.
// A zero denominator renders as 0.0%.
func Percent(num, den int64) string {
	if den == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(num)/float64(den)*100)
}

// Ratio renders num/den with two decimal places, 0.00 when den is zero.
func Ratio(num, den int64) string {
	if den == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(num)/float64(den))
}

// Duration renders a second count as hours and minutes while keeping the
// raw value visible.
func Duration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	return fmt.Sprintf("%d小时%d分钟 (%s秒)", h, m, Comma(seconds))
}

// Clock renders a second count as HH:MM:SS; zero and below means done.
func Clock(seconds int64) string {
	if seconds <= 0 {
		return "已完成"
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// Scalar renders a raw payload value the way report counters are shown:
// grouped integers, one-decimal floats, everything else verbatim. Absent
// values render the fixed no-data marker.
func Scalar(v any) string {
	if v == nil {
		return "无数据"
	}
	s := Str(v)
	if s == "" {
		return "无数据"
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return CommaFloat(f, 1)
		}
		return s
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Comma(i)
	}
	return s
}
