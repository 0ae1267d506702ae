package format

import (
	"strconv"
	"strings"
)

// SeriesPoint is one entry of a daily value series string
// ("label-date-value,label-date-value,...").
type SeriesPoint struct {
	Label string
	Date  string
	Value int64
}

// ParseSeries splits a comma-delimited daily series. An entry must yield
// at least three '-'-separated parts with a numeric third part; entries
// that don't match are skipped silently.
func ParseSeries(s string) []SeriesPoint {
	var points []SeriesPoint
	for _, entry := range strings.Split(s, ",") {
		parts := strings.Split(strings.TrimSpace(entry), "-")
		if len(parts) < 3 {
			continue
		}
		value, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
		if err != nil {
			continue
		}
		points = append(points, SeriesPoint{
			Label: strings.TrimSpace(parts[0]),
			Date:  strings.TrimSpace(parts[1]),
			Value: value,
		})
	}
	return points
}
