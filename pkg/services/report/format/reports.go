package format

import (
	"fmt"
	"time"

	"github.com/df-tools/solrecon/pkg/models/domain"
)

// ModeName resolves a battle mode code to its display name.
func ModeName(mode string) string {
	if mode == "mp" {
		return "全面战场"
	}
	return "烽火地带"
}

// labeledField pairs a payload key with its display label. Field order is
// part of the report contract, so these live in slices, not maps.
type labeledField struct {
	key   string
	label string
}

var weeklyRecordFields = []labeledField{
	{"Consume_Bullet_Num", "总消耗弹药数"},
	{"Hit_Bullet_Num", "总命中子弹数"},
	{"Kill_Num", "总击杀数"},
	{"Kill_type1_Num", "载具击杀数量"},
	{"Rank_Match_Score", "排位分"},
	{"Rescue_Campmate_Count", "救援阵营队友数"},
	{"Rescue_Teammate_Count", "救援小队队友数"},
	{"SBattle_Support_CostScore", "局内支援呼叫消耗分数"},
	{"SBattle_Support_UseNum", "局内支援呼叫次数"},
	{"Teammate_Reborn_Num", "队友重生次数"},
	{"Used_Time", "使用次数"},
	{"by_Rescue_num", "被救援次数"},
	{"continuous_Kill_Num", "最高连续击杀"},
	{"total_Occupy", "占点数"},
	{"total_gametime", "总游戏时长(秒)"},
	{"total_num", "对局场次"},
	{"total_score", "总得分"},
	{"win_num", "胜场"},
	{"DeployArmedForceType_KillNum", "本命干员完成击杀"},
	{"DeployArmedForceType_gametime", "本命干员游戏时长(秒)"},
	{"DeployArmedForceType_inum", "本命干员完成对局"},
	{"max_inum_DeployArmedForceType", "本命干员ID"},
	{"max_inum_mapid", "地图信息"},
}

// WeeklyRecord renders the per-mode weekly counter record, one line per
// counter in the fixed field order.
func (f *Formatter) WeeklyRecord(payload map[string]any, mode string, now time.Time) *domain.Report {
	if len(payload) == 0 {
		return noDataReport("record", "本周无战场周报数据")
	}

	lines := make([]string, 0, len(weeklyRecordFields))
	for _, field := range weeklyRecordFields {
		v, ok := payload[field.key]
		if !ok {
			lines = append(lines, field.label+": 无数据")
			continue
		}
		lines = append(lines, field.label+": "+Scalar(v))
	}
	return &domain.Report{
		Name:        "record",
		Title:       ModeName(mode) + "战场周报",
		GeneratedAt: now,
		Sections:    []domain.Section{{Lines: lines}},
	}
}

var friendFields = []labeledField{
	{"Friend_total_sol_num", "总场次"},
	{"Friend_is_Escape1_num", "撤离成功"},
	{"Friend_is_Escape2_num", "撤离失败"},
	{"Friend_Sum_Gained_Price", "总带出价值"},
	{"Friend_Max_Gained_Price", "最高带出价值"},
	{"Friend_consume_Price", "总战损"},
	{"Friend_total_sol_KillPlayer", "击杀玩家数"},
	{"Friend_total_sol_DeathCount", "死亡次数"},
	{"Friend_total_sol_AssistCnt", "救援次数"},
}

// FriendsWeekly renders teammate statistics: one section per teammate
// plus a derived escape rate at the end of each.
func (f *Formatter) FriendsWeekly(payload map[string]any, mode string, now time.Time) *domain.Report {
	friends, _ := payload["friends_sol_record"].([]any)
	if len(friends) == 0 {
		return noDataReport("friends", "无队友数据")
	}

	rep := &domain.Report{
		Name:        "friends",
		Title:       ModeName(mode) + "周报队友数据",
		GeneratedAt: now,
		Sections: []domain.Section{
			{Lines: []string{fmt.Sprintf("共找到 %d 位队友", len(friends))}},
		},
	}
	for i, entry := range friends {
		friend, _ := entry.(map[string]any)
		lines := make([]string, 0, len(friendFields)+2)
		openID := Str(friend["friend_openid"])
		if openID == "" {
			openID = "未知"
		}
		lines = append(lines, "OpenID: "+openID)
		for _, field := range friendFields {
			lines = append(lines, field.label+": "+Comma(FieldInt(friend, field.key)))
		}
		lines = append(lines, "撤离成功率: "+Percent(
			FieldInt(friend, "Friend_is_Escape1_num"),
			FieldInt(friend, "Friend_total_sol_num"),
		))
		rep.Sections = append(rep.Sections, domain.Section{
			Title: fmt.Sprintf("队友 %d", i+1),
			Lines: lines,
		})
	}
	return rep
}

// DailySol renders yesterday's sol report: gains plus the top collected
// items, item IDs resolved through the item table.
func (f *Formatter) DailySol(payload map[string]any, now time.Time) *domain.Report {
	detail, _ := payload["solDetail"].(map[string]any)
	if len(detail) == 0 {
		return noDataReport("daily", "无烽火地带日报数据")
	}

	date := Str(detail["recentGainDate"])
	if date == "" {
		date = "未知"
	}
	rep := &domain.Report{
		Name:        "daily",
		Title:       "烽火地带昨日日报",
		GeneratedAt: now,
		Sections: []domain.Section{
			{Lines: []string{
				"报告日期: " + date,
				"昨日收益: " + Comma(FieldInt(detail, "recentGain")) + " 金币",
			}},
		},
	}

	top := domain.Section{Title: "收益Top3物品"}
	if collection, ok := detail["userCollectionTop"].(map[string]any); ok {
		if items, ok := collection["list"].([]any); ok {
			for i, entry := range items {
				item, _ := entry.(map[string]any)
				id := Str(item["objectID"])
				top.Lines = append(top.Lines,
					fmt.Sprintf("%d. 物品: %s (ID: %s)", i+1, f.items.Name(id), id),
					"   带出数量: "+Comma(FieldInt(item, "count")),
					"   物品价值: "+CommaFloat(Float(item["price"]), 1)+" 金币",
				)
			}
		}
	}
	if len(top.Lines) == 0 {
		top.Skipped = true
		top.Reason = "无收益Top3物品数据"
	}
	rep.Sections = append(rep.Sections, top)

	generated := Str(payload["currentTime"])
	if generated == "" {
		generated = "未知"
	}
	rep.Sections = append(rep.Sections, domain.Section{
		Lines: []string{"报告生成时间: " + generated},
	})
	return rep
}

// DailyMp renders yesterday's mp scoreboard.
func (f *Formatter) DailyMp(payload map[string]any, now time.Time) *domain.Report {
	detail, _ := payload["mpDetail"].(map[string]any)
	if len(detail) == 0 {
		return noDataReport("daily", "无全面战场数据")
	}
	return &domain.Report{
		Name:        "daily",
		Title:       "全面战场昨日日报",
		GeneratedAt: now,
		Sections: []domain.Section{{
			Title: "全面战场数据",
			Lines: []string{
				"总得分: " + Comma(FieldInt(detail, "totalScore")),
				"总击杀: " + Comma(FieldInt(detail, "totalKill")),
				"总死亡: " + Comma(FieldInt(detail, "totalDeath")),
				"胜场: " + Comma(FieldInt(detail, "winNum")),
				"总场次: " + Comma(FieldInt(detail, "totalNum")),
			},
		}},
	}
}

// Secrets renders the daily map password list.
func (f *Formatter) Secrets(payload map[string]any, now time.Time) *domain.Report {
	list, _ := payload["list"].([]any)
	if len(list) == 0 {
		return noDataReport("secret", "无每日密码数据")
	}

	rep := &domain.Report{
		Name:        "secret",
		Title:       "每日密码",
		GeneratedAt: now,
	}
	for _, entry := range list {
		secret, _ := entry.(map[string]any)
		rep.Sections = append(rep.Sections, domain.Section{
			Lines: []string{
				"地图ID: " + Str(secret["mapID"]),
				"地图名称: " + Str(secret["mapName"]),
				"密码: " + Str(secret["secret"]),
			},
		})
	}
	return rep
}

// SpecialDuty renders special duty facility states, one section per
// facility with the remaining time as a countdown clock.
func (f *Formatter) SpecialDuty(places []any, now time.Time) *domain.Report {
	if len(places) == 0 {
		return noDataReport("duty", "没有特勤处状态数据")
	}

	rep := &domain.Report{
		Name:        "duty",
		Title:       "特勤处状态",
		GeneratedAt: now,
	}
	for _, entry := range places {
		place, _ := entry.(map[string]any)
		name := Str(place["Name"])
		if name == "" {
			name = "未知"
		}
		status := Str(place["Status"])
		if status == "" {
			status = "未知"
		}
		level := Str(place["Level"])
		if level == "" {
			level = "未知"
		}
		rep.Sections = append(rep.Sections, domain.Section{
			Title: name,
			Lines: []string{
				"状态: " + status,
				"等级: " + level,
				"剩余时间: " + Clock(Int(place["leftTime"])),
			},
		})
	}
	return rep
}

// AssetStatus classifies a currency balance. The same thresholds apply
// per currency and to the aggregate total.
func AssetStatus(total int64) string {
	switch {
	case total >= 1_000_000:
		return "充裕"
	case total >= 100_000:
		return "充足"
	default:
		return "紧张"
	}
}
