package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"WhatToDo-App/internal/domain/repository"
	"WhatToDo-App/internal/infrastructure/database"
)

const blobTable = "kv_blobs"

// SupabaseBlobRepository Supabase(PostgREST)を使用したキー・バリュー形式のリポジトリ
type SupabaseBlobRepository struct {
	client *database.SupabaseClient
}

// supabaseBlobRow kv_blobs テーブルの1行
type supabaseBlobRow struct {
	BlobKey   string    `json:"blob_key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSupabaseBlobRepository 新しいSupabaseBlobRepositoryインスタンスを作成
func NewSupabaseBlobRepository(client *database.SupabaseClient) *SupabaseBlobRepository {
	return &SupabaseBlobRepository{
		client: client,
	}
}

var _ repository.BlobRepository = (*SupabaseBlobRepository)(nil)

func (r *SupabaseBlobRepository) Get(ctx context.Context, key string) (string, bool, error) {
	data, _, err := r.client.GetClient().From(blobTable).Select("blob_key,value,updated_at", "", false).Eq("blob_key", key).Execute()
	if err != nil {
		return "", false, fmt.Errorf("データの取得失敗 (key: %s): %w", key, err)
	}

	var rows []supabaseBlobRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return "", false, fmt.Errorf("データのJSONアンマーシャル失敗: %w", err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Value, true, nil
}

func (r *SupabaseBlobRepository) Set(ctx context.Context, key, value string) error {
	row := supabaseBlobRow{
		BlobKey:   key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	_, _, err := r.client.GetClient().From(blobTable).Insert(row, true, "blob_key", "minimal", "").Execute()
	if err != nil {
		return fmt.Errorf("データの保存失敗 (key: %s): %w", key, err)
	}
	return nil
}
