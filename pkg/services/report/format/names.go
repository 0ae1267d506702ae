package format

import "fmt"

// Static ID -> display name tables. Lookups never fail: IDs missing from
// a table render as a labelled fallback carrying the raw ID.

var operatorNames = map[string]string{
	"10007": "红狼",
	"10010": "威龙",
	"10011": "无名",
	"10012": "疾风",
	"20003": "蜂医",
	"20004": "蛊",
	"20005": "未知干员(20005)",
	"30008": "牧羊人",
	"30009": "乌鲁鲁",
	"30010": "深蓝",
	"40005": "露娜",
	"40010": "骇爪",
	"40011": "银翼",
}

var mapNames = map[string]string{
	"1901": "零号大坝",
	"1902": "零号大坝(夜)",
	"2201": "长弓溪谷",
	"2202": "巴克什",
	"3901": "航天基地",
	"8102": "潮汐监狱",
}

var currencyNames = map[string]string{
	"17020000010": "哈夫币",
	"17888808889": "三角券",
	"17888808888": "三角币",
}

// OperatorName resolves an armed-force ID to its display name.
func OperatorName(id string) string {
	if name, ok := operatorNames[id]; ok {
		return name
	}
	return fmt.Sprintf("未知干员(%s)", id)
}

// MapName resolves a map ID to its display name.
func MapName(id string) string {
	if name, ok := mapNames[id]; ok {
		return name
	}
	return fmt.Sprintf("未知地图(%s)", id)
}

// CurrencyName resolves a currency item ID to its display name.
func CurrencyName(id string) string {
	if name, ok := currencyNames[id]; ok {
		return name
	}
	return "未知货币"
}
