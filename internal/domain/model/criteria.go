package model

import (
	"regexp"
	"strings"
)

// AgeRequirement は参加者の年齢条件
type AgeRequirement string

const (
	AgeRequirementAllAges    AgeRequirement = "under21" // 21歳未満を含む（全年齢）
	AgeRequirementAdultsOnly AgeRequirement = "over21"  // 全員21歳以上
)

// UnitSystem は距離の単位系
type UnitSystem string

const (
	UnitSystemMetric   UnitSystem = "metric"
	UnitSystemImperial UnitSystem = "imperial"
)

// 検索条件の入力範囲
const (
	MinDistance       = 1
	MaxDistance       = 100
	MinPeople         = 1
	MinLocationLength = 3
)

// Criteria はユーザーが入力した検索条件（1回の検索中は不変）
type Criteria struct {
	Location           string         `json:"location"`           // 出発地点（自由入力）
	Distance           int            `json:"distance"`           // 最大移動距離（単位は UnitSystem に依存）
	People             int            `json:"people"`             // 人数
	AgeRequirement     AgeRequirement `json:"ageRequirement"`     // 年齢条件
	Budget             string         `json:"budget"`             // 1人あたりの予算（自由入力）
	Duration           string         `json:"duration"`           // 希望所要時間（自由入力）
	IncludeRestaurants bool           `json:"includeRestaurants"` // 飲食店を含めるか
}

// DefaultCriteria はフォーム初期値の検索条件を返す
func DefaultCriteria() Criteria {
	return Criteria{
		Location:           "",
		Distance:           25,
		People:             2,
		AgeRequirement:     AgeRequirementAllAges,
		Budget:             "$50",
		Duration:           "2-4 hours",
		IncludeRestaurants: true,
	}
}

// IsAdultsOnly は21歳以上限定の検索かどうかを判定する
func (c Criteria) IsAdultsOnly() bool {
	return c.AgeRequirement == AgeRequirementAdultsOnly
}

// IsValid は年齢条件が既知の値かどうかを判定する
func (a AgeRequirement) IsValid() bool {
	return a == AgeRequirementAllAges || a == AgeRequirementAdultsOnly
}

// IsValid は単位系が既知の値かどうかを判定する
func (u UnitSystem) IsValid() bool {
	return u == UnitSystemMetric || u == UnitSystemImperial
}

// DistanceLabel は単位系に応じた距離の単位名を返す
func (u UnitSystem) DistanceLabel() string {
	if u == UnitSystemMetric {
		return "km"
	}
	return "miles"
}

// MetersPerUnit は単位系の1単位あたりのメートル数
func (u UnitSystem) MetersPerUnit() float64 {
	if u == UnitSystemMetric {
		return 1000
	}
	return 1609.344
}

var (
	usZipRegex   = regexp.MustCompile(`\b\d{5}\b`)
	usStateRegex = regexp.MustCompile(`(?i),\s*(AL|AK|AZ|AR|CA|CO|CT|DE|FL|GA|HI|ID|IL|IN|IA|KS|KY|LA|ME|MD|MA|MI|MN|MS|MO|MT|NE|NV|NH|NJ|NM|NY|NC|ND|OH|OK|OR|PA|RI|SC|SD|TN|TX|UT|VT|VA|WA|WV|WI|WY)\s*$`)
)

// DetectUnitSystem は入力された地名から単位系を推定する
// 米国のZIPコードまたは州コードで終わる場合はヤード・ポンド法、それ以外はメートル法
func DetectUnitSystem(location string) UnitSystem {
	location = strings.TrimSpace(location)
	if usZipRegex.MatchString(location) || usStateRegex.MatchString(location) {
		return UnitSystemImperial
	}
	return UnitSystemMetric
}
