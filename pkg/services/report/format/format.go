package format

import (
	"fmt"
	"sort"
	"time"

	"github.com/df-tools/solrecon/pkg/models/domain"
)

// NoWeeklyData is the fixed placeholder returned for an absent or empty
// weekly summary payload.
const NoWeeklyData = "无烽火周报数据"

// Formatter turns decoded report payloads into domain.Reports. It holds
// no mutable state; the same payload and timestamp always produce the
// same output.
type Formatter struct {
	items *ItemTable
}

// NewFormatter creates a formatter. items may be nil, in which case item
// IDs render as-is.
func NewFormatter(items *ItemTable) *Formatter {
	return &Formatter{items: items}
}

// WeeklySummary renders the sol weekly summary report. Every section is
// best-effort: a malformed embedded list collapses to its placeholder
// line and the remaining sections render normally.
func (f *Formatter) WeeklySummary(payload map[string]any, statDate string, now time.Time) *domain.Report {
	if len(payload) == 0 {
		return noDataReport("weekly", NoWeeklyData)
	}

	rep := &domain.Report{
		Name:        "weekly",
		Title:       "烽火周报",
		GeneratedAt: now,
	}

	period := "无数据"
	if statDate != "" {
		period = statDate
	}
	rep.Sections = append(rep.Sections,
		domain.Section{Lines: []string{"统计日期: " + period}},
		f.basicStats(payload),
		f.economicStats(payload),
		f.dailyGains(payload),
		f.combatStats(payload),
		f.specialStats(payload),
		f.operatorUsage(payload),
		f.mapDistribution(payload),
		f.highValueItems(payload),
	)
	return rep
}

func (f *Formatter) basicStats(payload map[string]any) domain.Section {
	total := FieldInt(payload, "total_sol_num")
	escaped := FieldInt(payload, "total_exacuation_num")
	return domain.Section{
		Title: "基础数据",
		Lines: []string{
			"对局场次: " + Comma(total),
			"撤离成功: " + Comma(escaped),
			"撤离成功率: " + Percent(escaped, total),
			"在线时长: " + Duration(FieldInt(payload, "total_Online_Time")),
			"排位分数: " + Comma(FieldInt(payload, "Rank_Score")),
		},
	}
}

func (f *Formatter) economicStats(payload map[string]any) domain.Section {
	return domain.Section{
		Title: "经济数据",
		Lines: []string{
			"总带出哈夫币: " + Comma(FieldInt(payload, "Gained_Price")),
			"总带入: " + Comma(FieldInt(payload, "consume_Price")),
			"总利润: " + Comma(FieldInt(payload, "rise_Price")),
			"百万撤离场次: " + Comma(FieldInt(payload, "GainedPrice_overmillion_num")),
		},
	}
}

func (f *Formatter) dailyGains(payload map[string]any) domain.Section {
	points := ParseSeries(Str(payload["Gained_Price_day_list"]))
	if len(points) == 0 {
		return domain.Section{Title: "每日收益", Skipped: true, Reason: "无每日收益数据"}
	}
	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("%s %s: %s", p.Label, p.Date, Comma(p.Value)))
	}
	return domain.Section{Title: "每日收益", Lines: lines}
}

func (f *Formatter) combatStats(payload map[string]any) domain.Section {
	kills := FieldInt(payload, "total_Kill_Player")
	deaths := FieldInt(payload, "total_Death_Count")
	return domain.Section{
		Title: "战斗数据",
		Lines: []string{
			"击败干员: " + Comma(kills),
			"击杀AI: " + Comma(FieldInt(payload, "total_Kill_AI")),
			"击杀BOSS: " + Comma(FieldInt(payload, "total_Kill_Boss")),
			"死亡次数: " + Comma(deaths),
			"干员击败比: " + Ratio(kills, deaths),
		},
	}
}

func (f *Formatter) specialStats(payload map[string]any) domain.Section {
	return domain.Section{
		Title: "特殊数据",
		Lines: []string{
			"曼德尔砖破译: " + Comma(FieldInt(payload, "Mandel_brick_num")),
		},
	}
}

// operatorUsage aggregates {'ArmedForceId':id,'inum':n} records: the
// first field is the force ID, the second the usage count. Counts for a
// repeated ID add up.
func (f *Formatter) operatorUsage(payload map[string]any) domain.Section {
	records := ParseRecordList(Str(payload["total_ArmedForceId_num"]))
	counts := make(map[string]int64)
	var order []string
	for _, rec := range records {
		id, ok := rec.At(0)
		if !ok || id.Value == "" {
			continue
		}
		count, _ := rec.At(1)
		if _, seen := counts[id.Value]; !seen {
			order = append(order, id.Value)
		}
		counts[id.Value] += Int(count.Value)
	}
	if len(order) == 0 {
		return domain.Section{Title: "干员使用情况", Skipped: true, Reason: "无有效干员数据"}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	var total int64
	for _, id := range order {
		total += counts[id]
	}
	lines := make([]string, 0, len(order))
	for _, id := range order {
		lines = append(lines, fmt.Sprintf("%s: %s次 (%s)", OperatorName(id), Comma(counts[id]), Percent(counts[id], total)))
	}
	return domain.Section{Title: "干员使用情况", Lines: lines}
}

// mapDistribution reads {'MapId':id,'inum':n} records positionally and
// keeps the five most played maps.
func (f *Formatter) mapDistribution(payload map[string]any) domain.Section {
	records := ParseRecordList(Str(payload["total_mapid_num"]))
	type mapCount struct {
		id    string
		count int64
	}
	var entries []mapCount
	for _, rec := range records {
		id, ok := rec.At(0)
		if !ok || id.Value == "" {
			continue
		}
		count, _ := rec.At(1)
		entries = append(entries, mapCount{id: id.Value, count: Int(count.Value)})
	}
	if len(entries) == 0 {
		return domain.Section{Title: "地图分布", Skipped: true, Reason: "无地图分布数据"}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if len(entries) > 5 {
		entries = entries[:5]
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s场", MapName(e.id), Comma(e.count)))
	}
	return domain.Section{Title: "地图分布", Lines: lines}
}

// highValueItems lists the first ten high-value records in payload
// order. This record shape carries extra fields, so itemid and iPrice
// are located by key rather than position.
func (f *Formatter) highValueItems(payload map[string]any) domain.Section {
	records := ParseRecordList(Str(payload["CarryOut_highprice_list"]))
	if len(records) == 0 {
		return domain.Section{Title: "高价值物品列表", Skipped: true, Reason: "无有效物品数据"}
	}
	if len(records) > 10 {
		records = records[:10]
	}

	lines := make([]string, 0, len(records)*2)
	for i, rec := range records {
		id, _ := rec.Get("itemid")
		typ, _ := rec.Get("auctontype")
		if typ == "" {
			typ = "未知类型"
		}
		subtype, _ := rec.Get("auctonsubtype")
		lines = append(lines,
			fmt.Sprintf("%d. %s (ID: %s)", i+1, f.items.Name(id), id),
			fmt.Sprintf("   类型: %s - %s | 品质: %d级 | 数量: %s | 总价值: %s哈夫币",
				typ, subtype, rec.Int("quality"), Comma(rec.Int("inum")),
				CommaFloat(rec.Float("iPrice"), 0)),
		)
	}
	return domain.Section{Title: "高价值物品列表", Lines: lines}
}

func noDataReport(name, message string) *domain.Report {
	return &domain.Report{
		Name:     name,
		Sections: []domain.Section{{Lines: []string{message}}},
	}
}
