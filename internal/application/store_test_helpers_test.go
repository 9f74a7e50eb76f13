package application

import (
	"context"
	"errors"
	"sync"
)

// failingBlobRepository は読み書きの失敗を再現するテスト用リポジトリ
type failingBlobRepository struct {
	mu        sync.Mutex
	blobs     map[string]string
	failGet   bool
	failSet   bool
	setCalled int
}

func newFailingBlobRepository() *failingBlobRepository {
	return &failingBlobRepository{blobs: map[string]string{}}
}

func (r *failingBlobRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failGet {
		return "", false, errors.New("storage unavailable")
	}
	v, ok := r.blobs[key]
	return v, ok, nil
}

func (r *failingBlobRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setCalled++
	if r.failSet {
		return errors.New("quota exceeded")
	}
	r.blobs[key] = value
	return nil
}
