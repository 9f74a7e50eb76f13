package usecase

import (
	"WhatToDo-App/internal/domain/model"
	"WhatToDo-App/internal/domain/repository"
	"context"
	"log"
)

type RecommendationUseCase interface {
	// SearchActivities は検索条件からアクティビティを検索してカテゴリ別の結果を返す
	SearchActivities(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error)
}

// recommendationUseCaseImpl はRecommendationUseCaseの実装
type recommendationUseCaseImpl struct {
	curationRepository repository.ActivityCurationRepository
}

// NewRecommendationUseCase は新しいRecommendationUseCaseインスタンスを作成
func NewRecommendationUseCase(curationRepo repository.ActivityCurationRepository) RecommendationUseCase {
	return &recommendationUseCaseImpl{
		curationRepository: curationRepo,
	}
}

// SearchActivities は単位系を決定してから検索を実行する
// 単位系が指定されていない場合は出発地点の表記から推定する
func (u *recommendationUseCaseImpl) SearchActivities(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	unit := req.Unit
	if !unit.IsValid() {
		unit = model.DetectUnitSystem(req.Criteria.Location)
	}

	log.Printf("🚀 アクティビティ検索開始 (場所: %s, 距離: %d %s, 絞り込み: %t)",
		req.Criteria.Location, req.Criteria.Distance, unit.DistanceLabel(), req.Refinement != "")

	result, err := u.curationRepository.FindActivities(ctx, req.Criteria, unit, req.Refinement)
	if err != nil {
		return nil, err
	}

	return &model.SearchResponse{
		Activities:      result.Activities,
		GroundingChunks: result.GroundingChunks,
		Unit:            unit,
	}, nil
}
