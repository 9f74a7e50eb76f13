package application

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"WhatToDo-App/internal/domain/model"
	"WhatToDo-App/internal/domain/repository"
)

// ActivityStore お気に入りアクティビティの永続化を提供するサービス
// 読み込みエラーは空リスト扱い、書き込みエラーはログ出力のみで呼び出し元には返さない
type ActivityStore interface {
	// List 保存済みアクティビティを保存順で取得
	List(ctx context.Context) []model.Activity

	// Add 同名のアクティビティがなければ追加し、更新後のリストを返す
	Add(ctx context.Context, activity model.Activity) []model.Activity

	// Remove 指定名のアクティビティを削除し、更新後のリストを返す
	Remove(ctx context.Context, name string) []model.Activity

	// Toggle 保存済みなら削除、未保存なら追加する
	Toggle(ctx context.Context, activity model.Activity) (activities []model.Activity, saved bool)

	// Contains 指定名のアクティビティが保存済みかどうか
	Contains(ctx context.Context, name string) bool
}

// activityStoreImpl ActivityStoreの実装
type activityStoreImpl struct {
	blobs repository.BlobRepository
	mu    sync.Mutex
}

// NewActivityStore ActivityStoreの新しいインスタンスを作成
func NewActivityStore(blobs repository.BlobRepository) ActivityStore {
	return &activityStoreImpl{
		blobs: blobs,
	}
}

// List 保存済みアクティビティを取得
func (s *activityStoreImpl) List(ctx context.Context) []model.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx).SavedActivities
}

// Add アクティビティを追加（同名が存在する場合は何もしない）
func (s *activityStoreImpl) Add(ctx context.Context, activity model.Activity) []model.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.add(ctx, activity)
}

// Remove 指定名のアクティビティを削除
func (s *activityStoreImpl) Remove(ctx context.Context, name string) []model.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(ctx, name)
}

// Toggle 保存状態を切り替える
func (s *activityStoreImpl) Toggle(ctx context.Context, activity model.Activity) ([]model.Activity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOfActivity(s.load(ctx).SavedActivities, activity.ActivityName) >= 0 {
		return s.remove(ctx, activity.ActivityName), false
	}
	return s.add(ctx, activity), true
}

// Contains 保存済みかどうかを判定
func (s *activityStoreImpl) Contains(ctx context.Context, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return indexOfActivity(s.load(ctx).SavedActivities, name) >= 0
}

func (s *activityStoreImpl) add(ctx context.Context, activity model.Activity) []model.Activity {
	profile := s.load(ctx)
	if indexOfActivity(profile.SavedActivities, activity.ActivityName) >= 0 {
		return profile.SavedActivities
	}

	updated := make([]model.Activity, 0, len(profile.SavedActivities)+1)
	updated = append(updated, profile.SavedActivities...)
	updated = append(updated, activity)

	profile.SavedActivities = updated
	s.save(ctx, profile)
	return updated
}

func (s *activityStoreImpl) remove(ctx context.Context, name string) []model.Activity {
	profile := s.load(ctx)

	updated := make([]model.Activity, 0, len(profile.SavedActivities))
	for _, a := range profile.SavedActivities {
		if a.ActivityName != name {
			updated = append(updated, a)
		}
	}

	profile.SavedActivities = updated
	s.save(ctx, profile)
	return updated
}

// load プロフィールを読み込む（存在しない・壊れている場合は空）
func (s *activityStoreImpl) load(ctx context.Context) model.UserProfile {
	empty := model.UserProfile{SavedActivities: []model.Activity{}}

	data, found, err := s.blobs.Get(ctx, model.ProfileStorageKey)
	if err != nil {
		log.Printf("⚠️ プロフィールの読み込みに失敗: %v", err)
		return empty
	}
	if !found || data == "" {
		return empty
	}

	var profile model.UserProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		log.Printf("⚠️ プロフィールのJSONパースに失敗: %v", err)
		return empty
	}
	if profile.SavedActivities == nil {
		profile.SavedActivities = []model.Activity{}
	}
	return profile
}

// save プロフィール全体を1回で書き込む（失敗はログのみ）
func (s *activityStoreImpl) save(ctx context.Context, profile model.UserProfile) {
	data, err := json.Marshal(profile)
	if err != nil {
		log.Printf("❌ プロフィールのJSONマーシャル失敗: %v", err)
		return
	}

	if err := s.blobs.Set(ctx, model.ProfileStorageKey, string(data)); err != nil {
		log.Printf("❌ プロフィールの保存に失敗: %v", err)
		return
	}

	log.Printf("💾 お気に入りアクティビティを保存 (%d件)", len(profile.SavedActivities))
}

// indexOfActivity 名前が一致するアクティビティの位置を返す（なければ -1）
func indexOfActivity(activities []model.Activity, name string) int {
	for i, a := range activities {
		if a.ActivityName == name {
			return i
		}
	}
	return -1
}
