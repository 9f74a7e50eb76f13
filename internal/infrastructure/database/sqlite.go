package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteClient ローカルファイルのSQLiteクライアント
type SQLiteClient struct {
	DB *sql.DB
}

// NewSQLiteClient 新しいSQLiteクライアントを作成（ファイルがなければ作成される）
func NewSQLiteClient(path string) (*SQLiteClient, error) {
	if path == "" {
		return nil, fmt.Errorf("SQLITE_PATHが設定されていません")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("SQLiteディレクトリの作成に失敗: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("SQLiteのオープンに失敗: %w", err)
	}

	// 書き込みは1接続に限定する
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("SQLiteへの接続に失敗: %w", err)
	}

	return &SQLiteClient{
		DB: db,
	}, nil
}

// Close データベース接続を閉じる
func (sc *SQLiteClient) Close() error {
	if sc.DB != nil {
		return sc.DB.Close()
	}
	return nil
}
