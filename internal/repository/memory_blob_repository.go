package repository

import (
	"context"
	"sync"

	"WhatToDo-App/internal/domain/repository"
)

// MemoryBlobRepository プロセス内メモリにデータを保持するリポジトリ（テスト・開発用）
type MemoryBlobRepository struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewMemoryBlobRepository 新しいMemoryBlobRepositoryインスタンスを作成
func NewMemoryBlobRepository() *MemoryBlobRepository {
	return &MemoryBlobRepository{
		blobs: make(map[string]string),
	}
}

var _ repository.BlobRepository = (*MemoryBlobRepository)(nil)

func (r *MemoryBlobRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.blobs[key]
	return value, ok, nil
}

func (r *MemoryBlobRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blobs[key] = value
	return nil
}
