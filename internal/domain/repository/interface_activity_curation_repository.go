package repository

import (
	"WhatToDo-App/internal/domain/model"
	"context"
)

// ActivityCurationRepository は検索条件からアクティビティを収集する責務を持つリポジトリインターフェース
type ActivityCurationRepository interface {
	// FindActivities は外部の生成検索サービスを呼び出し、カテゴリ別の結果と出典を返す
	FindActivities(ctx context.Context, criteria model.Criteria, unit model.UnitSystem, refinement string) (*model.SearchResult, error)
}
