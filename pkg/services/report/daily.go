package report

import (
	"context"
	"encoding/json"

	"github.com/df-tools/solrecon/pkg/models/api"
	"github.com/df-tools/solrecon/pkg/models/domain"
)

// dailyController fetches yesterday's report for either battle mode.
type dailyController struct {
	deps Deps
}

func (c *dailyController) Name() string { return "daily" }

func (c *dailyController) Fetch(ctx context.Context, q Query) (*domain.Report, error) {
	q, err := q.Normalize(c.deps.now())
	if err != nil {
		return nil, err
	}

	inner, _ := json.Marshal(map[string]string{"resourceType": q.Mode})
	params := chartParams("316969", "NoOapI")
	params.Set("method", "dfm/center.recent.detail")
	params.Set("source", "2")
	params.Set("sArea", q.Area)
	params.Set("param", string(inner))

	raw, err := c.deps.Client.Query(ctx, params)
	if err != nil {
		return nil, err
	}
	payload, err := api.DecodeObject(raw)
	if err != nil {
		return nil, err
	}
	if q.Mode == "mp" {
		return c.deps.Format.DailyMp(payload, c.deps.now()), nil
	}
	return c.deps.Format.DailySol(payload, c.deps.now()), nil
}
