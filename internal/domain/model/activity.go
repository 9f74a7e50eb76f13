package model

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MiscellaneousCategory はカテゴリ未指定のアクティビティの振り分け先
const MiscellaneousCategory = "Miscellaneous"

// Activity はモデルが返すアクティビティ1件。保存済みリスト内では ActivityName が一意キー
type Activity struct {
	ActivityName     string `json:"activityName" firestore:"activityName"`
	CostPerPerson    string `json:"costPerPerson" firestore:"costPerPerson"`
	DurationEstimate string `json:"durationEstimate" firestore:"durationEstimate"`
	WebsiteLink      string `json:"websiteLink" firestore:"websiteLink"`
	MapsLink         string `json:"mapsLink" firestore:"mapsLink"`
	Description      string `json:"description" firestore:"description"`
	Category         string `json:"category" firestore:"category"`
}

// CategoryOrDefault はカテゴリ名を返す（空の場合は Miscellaneous）
func (a Activity) CategoryOrDefault() string {
	if a.Category == "" {
		return MiscellaneousCategory
	}
	return a.Category
}

// CategorizedActivities はカテゴリ名 → アクティビティ一覧の順序付きマップ
// カテゴリの順序は元の配列で最初に出現した順、カテゴリ内の順序は元の配列順
type CategorizedActivities struct {
	m *orderedmap.OrderedMap[string, []Activity]
}

// NewCategorizedActivities は空の CategorizedActivities を作成
func NewCategorizedActivities() *CategorizedActivities {
	return &CategorizedActivities{m: orderedmap.New[string, []Activity]()}
}

func (c *CategorizedActivities) ensure() {
	if c.m == nil {
		c.m = orderedmap.New[string, []Activity]()
	}
}

// Append はアクティビティをカテゴリの末尾に追加する（新しいカテゴリは最後尾に作成）
func (c *CategorizedActivities) Append(activity Activity) {
	c.ensure()
	category := activity.CategoryOrDefault()
	list, _ := c.m.Get(category)
	c.m.Set(category, append(list, activity))
}

// Get はカテゴリのアクティビティ一覧を取得する
func (c *CategorizedActivities) Get(category string) ([]Activity, bool) {
	if c == nil || c.m == nil {
		return nil, false
	}
	return c.m.Get(category)
}

// Categories はカテゴリ名を順序どおりに返す
func (c *CategorizedActivities) Categories() []string {
	if c == nil || c.m == nil {
		return []string{}
	}
	categories := make([]string, 0, c.m.Len())
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		categories = append(categories, pair.Key)
	}
	return categories
}

// Len はカテゴリ数を返す
func (c *CategorizedActivities) Len() int {
	if c == nil || c.m == nil {
		return 0
	}
	return c.m.Len()
}

// Count は全カテゴリのアクティビティ総数を返す
func (c *CategorizedActivities) Count() int {
	if c == nil || c.m == nil {
		return 0
	}
	total := 0
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		total += len(pair.Value)
	}
	return total
}

// MarshalJSON はカテゴリ順を保ったJSONオブジェクトとして出力する
func (c *CategorizedActivities) MarshalJSON() ([]byte, error) {
	if c == nil || c.m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.m)
}

// UnmarshalJSON はJSONオブジェクトのキー順を保って読み込む
func (c *CategorizedActivities) UnmarshalJSON(data []byte) error {
	m := orderedmap.New[string, []Activity]()
	if err := json.Unmarshal(data, m); err != nil {
		return err
	}
	c.m = m
	return nil
}
