package repository

import "context"

// BlobRepository はキーごとに1つのシリアライズ済みデータを保持する永続化ポート
type BlobRepository interface {
	// Get はキーに対応するデータを取得する。存在しない場合 found は false
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set はキーに対応するデータ全体を1回の書き込みで置き換える
	Set(ctx context.Context, key, value string) error
}
