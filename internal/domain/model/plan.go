package model

import (
	"strings"
	"time"
)

// SavedPlan は検索条件と検索結果のスナップショット。作成後は削除以外で変更されない
type SavedPlan struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	FormData        Criteria               `json:"formData"`
	Results         *CategorizedActivities `json:"results"`
	GroundingChunks []GroundingChunk       `json:"groundingChunks"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// NewPlanPayload は ID と作成日時を持たない保存前のプラン
type NewPlanPayload struct {
	Name            string                 `json:"name"`
	FormData        Criteria               `json:"formData"`
	Results         *CategorizedActivities `json:"results"`
	GroundingChunks []GroundingChunk       `json:"groundingChunks"`
}

// TrimmedName は前後の空白を除いたプラン名を返す
func (p NewPlanPayload) TrimmedName() string {
	return strings.TrimSpace(p.Name)
}
