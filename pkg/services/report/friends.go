package report

import (
	"context"
	"encoding/json"

	"github.com/df-tools/solrecon/pkg/models/api"
	"github.com/df-tools/solrecon/pkg/models/domain"
)

// friendsController fetches weekly teammate statistics.
type friendsController struct {
	deps Deps
}

func (c *friendsController) Name() string { return "friends" }

func (c *friendsController) Fetch(ctx context.Context, q Query) (*domain.Report, error) {
	q, err := q.Normalize(c.deps.now())
	if err != nil {
		return nil, err
	}

	method := "dfm/weekly." + q.Mode + ".friend.record"
	inner, _ := json.Marshal(map[string]string{
		"source":   q.Source,
		"method":   method,
		"statDate": q.StatDate,
	})
	params := chartParams("316968", "KfXJwH")
	params.Set("method", method)
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
	return c.deps.Format.FriendsWeekly(payload, q.Mode, c.deps.now()), nil
}
