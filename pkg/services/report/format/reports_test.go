package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyRecord(t *testing.T) {
	f := NewFormatter(nil)

	t.Run("empty payload renders the no data marker", func(t *testing.T) {
		rep := f.WeeklyRecord(nil, "sol", testTime)
		assert.Equal(t, "本周无战场周报数据", rep.Text())
	})

	t.Run("counters render in fixed order", func(t *testing.T) {
		payload := map[string]any{
			"Kill_Num":  float64(1234),
			"total_num": float64(56),
			"win_num":   float64(20),
		}
		text := f.WeeklyRecord(payload, "mp", testTime).Text()

		assert.Contains(t, text, "=== 全面战场战场周报 ===")
		assert.Contains(t, text, "总击杀数: 1,234")
		assert.Contains(t, text, "对局场次: 56")
		assert.Contains(t, text, "总消耗弹药数: 无数据")

		killIdx := strings.Index(text, "总击杀数")
		matchIdx := strings.Index(text, "对局场次")
		assert.Less(t, killIdx, matchIdx)
	})

	t.Run("mode selects the title", func(t *testing.T) {
		payload := map[string]any{"total_num": float64(1)}
		assert.Contains(t, f.WeeklyRecord(payload, "sol", testTime).Text(), "烽火地带战场周报")
	})
}

func TestFriendsWeekly(t *testing.T) {
	f := NewFormatter(nil)

	t.Run("no teammates", func(t *testing.T) {
		rep := f.FriendsWeekly(map[string]any{}, "sol", testTime)
		assert.Equal(t, "无队友数据", rep.Text())
	})

	t.Run("renders each teammate with derived escape rate", func(t *testing.T) {
		payload := map[string]any{
			"friends_sol_record": []any{
				map[string]any{
					"friend_openid":           "abc123",
					"Friend_total_sol_num":    float64(10),
					"Friend_is_Escape1_num":   float64(7),
					"Friend_Sum_Gained_Price": float64(2500000),
				},
			},
		}
		text := f.FriendsWeekly(payload, "sol", testTime).Text()

		assert.Contains(t, text, "共找到 1 位队友")
		assert.Contains(t, text, "=== 队友 1 ===")
		assert.Contains(t, text, "OpenID: abc123")
		assert.Contains(t, text, "总场次: 10")
		assert.Contains(t, text, "总带出价值: 2,500,000")
		assert.Contains(t, text, "撤离成功率: 70.0%")
	})

	t.Run("teammate with no matches does not divide", func(t *testing.T) {
		payload := map[string]any{
			"friends_sol_record": []any{map[string]any{}},
		}
		text := f.FriendsWeekly(payload, "sol", testTime).Text()

		assert.Contains(t, text, "OpenID: 未知")
		assert.Contains(t, text, "撤离成功率: 0.0%")
	})
}

func TestDailySol(t *testing.T) {
	items := &ItemTable{names: map[string]string{"777": "手提箱"}}
	f := NewFormatter(items)

	t.Run("no detail", func(t *testing.T) {
		rep := f.DailySol(map[string]any{}, testTime)
		assert.Equal(t, "无烽火地带日报数据", rep.Text())
	})

	t.Run("renders gains and top items", func(t *testing.T) {
		payload := map[string]any{
			"solDetail": map[string]any{
				"recentGainDate": "2025-07-06",
				"recentGain":     float64(123456),
				"userCollectionTop": map[string]any{
					"list": []any{
						map[string]any{"objectID": float64(777), "count": float64(2), "price": float64(9999.5)},
					},
				},
			},
			"currentTime": "2025-07-07 08:00:00",
		}
		text := f.DailySol(payload, testTime).Text()

		assert.Contains(t, text, "=== 烽火地带昨日日报 ===")
		assert.Contains(t, text, "报告日期: 2025-07-06")
		assert.Contains(t, text, "昨日收益: 123,456 金币")
		assert.Contains(t, text, "1. 物品: 手提箱 (ID: 777)")
		assert.Contains(t, text, "带出数量: 2")
		assert.Contains(t, text, "物品价值: 9,999.5 金币")
		assert.Contains(t, text, "报告生成时间: 2025-07-07 08:00:00")
	})

	t.Run("missing top items degrade to placeholder", func(t *testing.T) {
		payload := map[string]any{
			"solDetail": map[string]any{"recentGain": float64(1)},
		}
		text := f.DailySol(payload, testTime).Text()

		assert.Contains(t, text, "无收益Top3物品数据")
	})
}

func TestDailyMp(t *testing.T) {
	f := NewFormatter(nil)

	t.Run("no detail", func(t *testing.T) {
		rep := f.DailyMp(map[string]any{}, testTime)
		assert.Equal(t, "无全面战场数据", rep.Text())
	})

	t.Run("renders scoreboard", func(t *testing.T) {
		payload := map[string]any{
			"mpDetail": map[string]any{
				"totalScore": float64(123456),
				"totalKill":  float64(78),
				"totalDeath": float64(45),
				"winNum":     float64(12),
				"totalNum":   float64(20),
			},
		}
		text := f.DailyMp(payload, testTime).Text()

		assert.Contains(t, text, "总得分: 123,456")
		assert.Contains(t, text, "总击杀: 78")
		assert.Contains(t, text, "胜场: 12")
	})
}

func TestSecrets(t *testing.T) {
	f := NewFormatter(nil)

	t.Run("no list", func(t *testing.T) {
		rep := f.Secrets(map[string]any{}, testTime)
		assert.Equal(t, "无每日密码数据", rep.Text())
	})

	t.Run("renders each map password", func(t *testing.T) {
		payload := map[string]any{
			"list": []any{
				map[string]any{"mapID": float64(1901), "mapName": "零号大坝", "secret": "4821"},
				map[string]any{"mapID": float64(2201), "mapName": "长弓溪谷", "secret": "1177"},
			},
		}
		text := f.Secrets(payload, testTime).Text()

		assert.Contains(t, text, "=== 每日密码 ===")
		assert.Contains(t, text, "地图ID: 1901")
		assert.Contains(t, text, "地图名称: 零号大坝")
		assert.Contains(t, text, "密码: 4821")
		assert.Contains(t, text, "密码: 1177")
	})
}

func TestSpecialDuty(t *testing.T) {
	f := NewFormatter(nil)

	t.Run("no places", func(t *testing.T) {
		rep := f.SpecialDuty(nil, testTime)
		assert.Equal(t, "没有特勤处状态数据", rep.Text())
	})

	t.Run("renders facility states with countdown", func(t *testing.T) {
		places := []any{
			map[string]any{"Name": "技术中心", "Status": "生产中", "Level": float64(3), "leftTime": float64(3665)},
			map[string]any{"Name": "训练中心", "Status": "空闲", "Level": float64(2), "leftTime": float64(0)},
		}
		text := f.SpecialDuty(places, testTime).Text()

		assert.Contains(t, text, "=== 技术中心 ===")
		assert.Contains(t, text, "状态: 生产中")
		assert.Contains(t, text, "等级: 3")
		assert.Contains(t, text, "剩余时间: 01:01:05")
		assert.Contains(t, text, "剩余时间: 已完成")
	})
}

func TestAssetStatus(t *testing.T) {
	cases := []struct {
		total int64
		want  string
	}{
		{2_000_000, "充裕"},
		{1_000_000, "充裕"},
		{999_999, "充足"},
		{100_000, "充足"},
		{99_999, "紧张"},
		{0, "紧张"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AssetStatus(tc.total), "total %d", tc.total)
	}
}

// The aggregate total is classified with the same thresholds as a single
// currency balance.
func TestAssetStatus_TotalUsesPerCurrencyThresholds(t *testing.T) {
	perCurrency := AssetStatus(150_000)
	total := AssetStatus(150_000)
	require.Equal(t, perCurrency, total)
	assert.Equal(t, "充足", total)
}
