package application

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"WhatToDo-App/internal/domain/model"
	"WhatToDo-App/internal/domain/repository"
)

// PlanStore 保存済みプラン（検索条件と結果のスナップショット）の永続化を提供するサービス
type PlanStore interface {
	// List 保存済みプランを作成日時の新しい順で取得
	List(ctx context.Context) []model.SavedPlan

	// Get 指定IDのプランを取得
	Get(ctx context.Context, id string) (model.SavedPlan, bool)

	// Add IDと作成日時を付与してプランを追加し、更新後のリストを返す
	Add(ctx context.Context, payload model.NewPlanPayload) []model.SavedPlan

	// Remove 指定IDのプランを削除し、更新後のリストを返す
	Remove(ctx context.Context, id string) []model.SavedPlan
}

// planStoreImpl PlanStoreの実装
type planStoreImpl struct {
	blobs repository.BlobRepository
	now   func() time.Time
	mu    sync.Mutex
}

// NewPlanStore PlanStoreの新しいインスタンスを作成
func NewPlanStore(blobs repository.BlobRepository) PlanStore {
	return NewPlanStoreWithClock(blobs, time.Now)
}

// NewPlanStoreWithClock 現在時刻の取得方法を指定してPlanStoreを作成
func NewPlanStoreWithClock(blobs repository.BlobRepository, now func() time.Time) PlanStore {
	return &planStoreImpl{
		blobs: blobs,
		now:   now,
	}
}

// List 保存済みプランを取得（読み込みのたびに並び替える）
func (s *planStoreImpl) List(ctx context.Context) []model.SavedPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Get 指定IDのプランを取得
func (s *planStoreImpl) Get(ctx context.Context, id string) (model.SavedPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.load(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return model.SavedPlan{}, false
}

// Add プランを先頭に追加
func (s *planStoreImpl) Add(ctx context.Context, payload model.NewPlanPayload) []model.SavedPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans := s.load(ctx)
	createdAt := s.now().UTC()

	results := payload.Results
	if results == nil {
		results = model.NewCategorizedActivities()
	}
	chunks := payload.GroundingChunks
	if chunks == nil {
		chunks = []model.GroundingChunk{}
	}

	newPlan := model.SavedPlan{
		ID:              s.newPlanID(createdAt),
		Name:            payload.Name,
		FormData:        payload.FormData,
		Results:         results,
		GroundingChunks: chunks,
		CreatedAt:       createdAt,
	}

	updated := make([]model.SavedPlan, 0, len(plans)+1)
	updated = append(updated, newPlan)
	updated = append(updated, plans...)
	sortPlansByNewest(updated)

	s.save(ctx, updated)
	log.Printf("✅ プランを保存: %s (ID: %s)", newPlan.Name, newPlan.ID)
	return updated
}

// Remove 指定IDのプランを削除（存在しないIDの場合は変更なし）
func (s *planStoreImpl) Remove(ctx context.Context, id string) []model.SavedPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans := s.load(ctx)
	updated := make([]model.SavedPlan, 0, len(plans))
	for _, p := range plans {
		if p.ID != id {
			updated = append(updated, p)
		}
	}

	s.save(ctx, updated)
	return updated
}

// newPlanID 作成時刻を含むID（UUIDv7）を生成する
func (s *planStoreImpl) newPlanID(createdAt time.Time) string {
	id, err := uuid.NewV7()
	if err != nil {
		log.Printf("⚠️ UUIDv7の生成に失敗、タイムスタンプIDを使用: %v", err)
		return strconv.FormatInt(createdAt.UnixMilli(), 10)
	}
	return id.String()
}

// load プラン一覧を読み込む（存在しない・壊れている場合は空）
func (s *planStoreImpl) load(ctx context.Context) []model.SavedPlan {
	data, found, err := s.blobs.Get(ctx, model.PlanStorageKey)
	if err != nil {
		log.Printf("⚠️ プランの読み込みに失敗: %v", err)
		return []model.SavedPlan{}
	}
	if !found || data == "" {
		return []model.SavedPlan{}
	}

	var plans []model.SavedPlan
	if err := json.Unmarshal([]byte(data), &plans); err != nil {
		log.Printf("⚠️ プランのJSONパースに失敗: %v", err)
		return []model.SavedPlan{}
	}
	if plans == nil {
		return []model.SavedPlan{}
	}

	sortPlansByNewest(plans)
	return plans
}

// save プラン一覧全体を1回で書き込む（失敗はログのみ）
func (s *planStoreImpl) save(ctx context.Context, plans []model.SavedPlan) {
	data, err := json.Marshal(plans)
	if err != nil {
		log.Printf("❌ プランのJSONマーシャル失敗: %v", err)
		return
	}

	if err := s.blobs.Set(ctx, model.PlanStorageKey, string(data)); err != nil {
		log.Printf("❌ プランの保存に失敗: %v", err)
	}
}

// sortPlansByNewest 作成日時の降順に並び替える（同時刻は既存の順序を維持）
func sortPlansByNewest(plans []model.SavedPlan) {
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
}
