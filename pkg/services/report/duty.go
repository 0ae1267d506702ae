package report

import (
	"context"

	"github.com/df-tools/solrecon/pkg/models/api"
	"github.com/df-tools/solrecon/pkg/models/domain"
)

// dutyController fetches special duty facility states.
type dutyController struct {
	deps Deps
}

func (c *dutyController) Name() string { return "duty" }

func (c *dutyController) Fetch(ctx context.Context, q Query) (*domain.Report, error) {
	params := chartParams("365589", "bQaMCQ")
	params.Set("source", "2")

	raw, err := c.deps.Client.Query(ctx, params)
	if err != nil {
		return nil, err
	}
	payload, err := api.DecodeObject(raw)
	if err != nil {
		return nil, err
	}

	places, _ := payload["placeData"].([]any)
	if places == nil {
		// Some gateway versions nest one level deeper.
		if inner, ok := payload["data"].(map[string]any); ok {
			places, _ = inner["placeData"].([]any)
		}
	}
	return c.deps.Format.SpecialDuty(places, c.deps.now()), nil
}
