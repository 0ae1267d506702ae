package report

import (
	"context"

	"github.com/df-tools/solrecon/pkg/models/api"
	"github.com/df-tools/solrecon/pkg/models/domain"
)

// secretController fetches the daily map password list.
type secretController struct {
	deps Deps
}

func (c *secretController) Name() string { return "secret" }

func (c *secretController) Fetch(ctx context.Context, q Query) (*domain.Report, error) {
	source := q.Source
	if source == "" {
		source = "2"
	}

	params := chartParams("316969", "NoOapI")
	params.Set("method", "dfm/center.day.secret")
	params.Set("source", source)
	params.Set("param", "{}")

	raw, err := c.deps.Client.Query(ctx, params)
	if err != nil {
		return nil, err
	}
	payload, err := api.DecodeObject(raw)
	if err != nil {
		return nil, err
	}
	return c.deps.Format.Secrets(payload, c.deps.now()), nil
}
