package report

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/df-tools/solrecon/pkg/models/domain"
	"github.com/df-tools/solrecon/pkg/services/report/format"
	"github.com/df-tools/solrecon/pkg/store/client"
)

// Query carries the user-facing parameters of a report request. Zero
// values resolve to the documented defaults in Normalize.
type Query struct {
	// Mode selects the battle mode, "sol" or "mp".
	Mode string
	// StatDate is the weekly anchor date in YYYYMMDD form.
	StatDate string
	// Area is the vendor server area code.
	Area string
	// Source identifies the requesting surface towards the vendor.
	Source string
}

// Controller fetches one report type and renders it.
type Controller interface {
	Name() string
	Fetch(ctx context.Context, q Query) (*domain.Report, error)
}

// Deps bundles what every controller needs. Now is swappable so tests
// can pin report timestamps.
type Deps struct {
	Client *client.Client
	Format *format.Formatter
	Now    func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Factory builds a controller from shared dependencies.
type Factory func(deps Deps) Controller

// DefaultStatDate returns the most recent Sunday on or before now, the
// anchor the weekly charts expect.
func DefaultStatDate(now time.Time) string {
	back := int(now.Weekday())
	return now.AddDate(0, 0, -back).Format("20060102")
}

// Normalize fills query defaults and validates the stat date.
func (q Query) Normalize(now time.Time) (Query, error) {
	if q.Mode == "" {
		q.Mode = "sol"
	}
	if q.Mode != "sol" && q.Mode != "mp" {
		return q, fmt.Errorf("unknown mode %q, want sol or mp", q.Mode)
	}
	if q.Area == "" {
		q.Area = "36"
	}
	if q.Source == "" {
		q.Source = "5"
	}
	if q.StatDate == "" {
		q.StatDate = DefaultStatDate(now)
	}
	if err := validateStatDate(q.StatDate); err != nil {
		return q, err
	}
	return q, nil
}

func validateStatDate(s string) error {
	if len(s) != 8 {
		return fmt.Errorf("stat date %q must be 8 digits (YYYYMMDD)", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("stat date %q must be 8 digits (YYYYMMDD)", s)
		}
	}
	return nil
}

// chartParams seeds the query string every chart request shares.
func chartParams(chartID, ideToken string) url.Values {
	return url.Values{
		"iChartId":    {chartID},
		"iSubChartId": {chartID},
		"sIdeToken":   {ideToken},
	}
}
