package report

import (
	"context"
	"encoding/json"

	"github.com/df-tools/solrecon/pkg/models/api"
	"github.com/df-tools/solrecon/pkg/models/domain"
)

// weeklyController fetches the sol weekly summary chart.
type weeklyController struct {
	deps Deps
}

func (c *weeklyController) Name() string { return "weekly" }

func (c *weeklyController) Fetch(ctx context.Context, q Query) (*domain.Report, error) {
	q, err := q.Normalize(c.deps.now())
	if err != nil {
		return nil, err
	}

	inner, _ := json.Marshal(map[string]string{
		"source":   q.Source,
		"method":   "dfm/weekly.sol.record",
		"statDate": q.StatDate,
	})
	params := chartParams("316968", "KfXJwH")
	params.Set("method", "dfm/weekly.sol.record")
	params.Set("source", q.Source)
	params.Set("sArea", q.Area)
	params.Set("statDate", q.StatDate)
	params.Set("param", string(inner))

	raw, err := c.deps.Client.Query(ctx, params)
	if err != nil {
		return nil, err
	}
	payload, err := api.DecodeObject(raw)
	if err != nil {
		return nil, err
	}
	return c.deps.Format.WeeklySummary(payload, q.StatDate, c.deps.now()), nil
}

// recordController fetches the per-mode weekly counter record.
type recordController struct {
	deps Deps
}

func (c *recordController) Name() string { return "record" }

func (c *recordController) Fetch(ctx context.Context, q Query) (*domain.Report, error) {
	q, err := q.Normalize(c.deps.now())
	if err != nil {
		return nil, err
	}

	inner, _ := json.Marshal(map[string]string{"statDate": q.StatDate})
	params := chartParams("316969", "NoOapI")
	params.Set("method", "dfm/weekly."+q.Mode+".record")
	params.Set("source", q.Source)
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
	return c.deps.Format.WeeklyRecord(payload, q.Mode, c.deps.now()), nil
}
