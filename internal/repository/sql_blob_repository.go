package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"WhatToDo-App/internal/domain/repository"
)

// SQLDialect はプレースホルダ形式の違いを吸収する
type SQLDialect int

const (
	DialectSQLite SQLDialect = iota
	DialectPostgres
)

// SQLBlobRepository database/sql を使用したキー・バリュー形式のリポジトリ
// 1キー = 1行で、値はJSON全体をそのまま保持する
type SQLBlobRepository struct {
	db      *sql.DB
	dialect SQLDialect
}

// NewSQLBlobRepository 新しいSQLBlobRepositoryインスタンスを作成
func NewSQLBlobRepository(db *sql.DB, dialect SQLDialect) *SQLBlobRepository {
	return &SQLBlobRepository{
		db:      db,
		dialect: dialect,
	}
}

var _ repository.BlobRepository = (*SQLBlobRepository)(nil)

const createBlobTableSQL = `
CREATE TABLE IF NOT EXISTS kv_blobs (
    blob_key   TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`

// EnsureSchema テーブルが存在しない場合に作成する
func (r *SQLBlobRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createBlobTableSQL); err != nil {
		return fmt.Errorf("kv_blobsテーブルの作成に失敗: %w", err)
	}
	return nil
}

func (r *SQLBlobRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, r.rebind(`SELECT value FROM kv_blobs WHERE blob_key = ?`), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("データの取得に失敗 (key: %s): %w", key, err)
	}
	return value, true, nil
}

func (r *SQLBlobRepository) Set(ctx context.Context, key, value string) error {
	query := r.rebind(`
INSERT INTO kv_blobs (blob_key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (blob_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("データの保存に失敗 (key: %s): %w", key, err)
	}
	return nil
}

// rebind は ? プレースホルダを方言に合わせて置き換える
func (r *SQLBlobRepository) rebind(query string) string {
	if r.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
