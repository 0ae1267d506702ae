package report

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/df-tools/solrecon/pkg/models/api"
	"github.com/df-tools/solrecon/pkg/models/domain"
	"github.com/df-tools/solrecon/pkg/services/report/format"
)

// currencies lists the queryable currency items in display order.
var currencies = []struct {
	item string
	name string
}{
	{"17020000010", "哈夫币"},
	{"17888808889", "三角券"},
	{"17888808888", "三角币"},
}

// assetsController queries each currency balance in turn. A failed
// currency renders as an inline failure line; the others still report.
type assetsController struct {
	deps Deps
}

func (c *assetsController) Name() string { return "assets" }

func (c *assetsController) Fetch(ctx context.Context, q Query) (*domain.Report, error) {
	log := zerolog.Ctx(ctx)

	rep := &domain.Report{
		Name:        "assets",
		Title:       "货币资产",
		GeneratedAt: c.deps.now(),
	}

	balances := domain.Section{Title: "货币余额"}
	var total int64
	for _, cur := range currencies {
		amount, err := c.fetchBalance(ctx, cur.item)
		if err != nil {
			log.Warn().Err(err).Str("currency", cur.name).Msg("currency query failed")
			balances.Lines = append(balances.Lines, cur.name+": 查询失败: "+err.Error())
			continue
		}
		total += amount
		balances.Lines = append(balances.Lines,
			cur.name+": "+format.Comma(amount)+" ("+format.AssetStatus(amount)+")")
	}
	rep.Sections = append(rep.Sections, balances, domain.Section{
		Title: "资产总览",
		Lines: []string{
			"总资产: " + format.Comma(total) + " (" + format.AssetStatus(total) + ")",
		},
	})
	return rep, nil
}

func (c *assetsController) fetchBalance(ctx context.Context, item string) (int64, error) {
	params := chartParams("319386", "zMemOt")
	params.Set("item", item)
	params.Set("type", "3")

	raw, err := c.deps.Client.Query(ctx, params)
	if err != nil {
		return 0, err
	}
	payload, err := api.Decode(raw)
	if err != nil {
		return 0, err
	}

	// The balance arrives as a one-element list.
	list, _ := payload.([]any)
	if len(list) == 0 {
		return 0, nil
	}
	first, _ := list[0].(map[string]any)
	return format.Int(first["totalMoney"]), nil
}
