package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"WhatToDo-App/internal/domain/repository"
)

const blobCollection = "blobs"

// FirestoreBlobRepository Firestoreを使用したキー・バリュー形式のリポジトリ
// 1キー = 1ドキュメントで、値はJSON全体を1フィールドに保持する
type FirestoreBlobRepository struct {
	client *firestore.Client
}

// firestoreBlob Firestoreに保存するドキュメント
type firestoreBlob struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// NewFirestoreBlobRepository 新しいFirestoreBlobRepositoryインスタンスを作成
func NewFirestoreBlobRepository(client *firestore.Client) *FirestoreBlobRepository {
	return &FirestoreBlobRepository{
		client: client,
	}
}

var _ repository.BlobRepository = (*FirestoreBlobRepository)(nil)

func (r *FirestoreBlobRepository) Get(ctx context.Context, key string) (string, bool, error) {
	doc, err := r.client.Collection(blobCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("ドキュメントの取得に失敗 (key: %s): %w", key, err)
	}

	var blob firestoreBlob
	if err := doc.DataTo(&blob); err != nil {
		return "", false, fmt.Errorf("データの変換に失敗しました: %w", err)
	}
	return blob.Value, true, nil
}

func (r *FirestoreBlobRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.client.Collection(blobCollection).Doc(key).Set(ctx, firestoreBlob{
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("❌ Failed to save blob %s: %v", key, err)
		return fmt.Errorf("ドキュメントの保存に失敗しました: %w", err)
	}
	return nil
}
