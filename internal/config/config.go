package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 永続化バックエンドの種類
const (
	BackendMemory    = "memory"
	BackendSQLite    = "sqlite"
	BackendPostgres  = "postgres"
	BackendSupabase  = "supabase"
	BackendFirestore = "firestore"
)

// Config はアプリケーション設定
type Config struct {
	Port string `mapstructure:"port"`

	GeminiAPIKey  string        `mapstructure:"gemini_api_key"`
	GeminiModel   string        `mapstructure:"gemini_model"`
	GeminiBaseURL string        `mapstructure:"gemini_base_url"`
	GeminiTimeout time.Duration `mapstructure:"gemini_timeout"`

	StorageBackend string `mapstructure:"storage_backend"`
	SQLitePath     string `mapstructure:"sqlite_path"`
	DatabaseURL    string `mapstructure:"database_url"`

	SupabaseURL     string `mapstructure:"supabase_url"`
	SupabaseAnonKey string `mapstructure:"supabase_anon_key"`

	FirestoreProjectID string `mapstructure:"firestore_project_id"`
	CredentialsFile    string `mapstructure:"google_application_credentials"`
}

var configKeys = []string{
	"port",
	"gemini_api_key",
	"gemini_model",
	"gemini_base_url",
	"gemini_timeout",
	"storage_backend",
	"sqlite_path",
	"database_url",
	"supabase_url",
	"supabase_anon_key",
	"firestore_project_id",
	"google_application_credentials",
}

// Load は .env・config.yaml・環境変数から設定を読み込む（環境変数が優先）
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// GEMINI_API_KEY などの大文字環境変数をそのまま使う
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("環境変数のバインドに失敗 (%s): %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("設定の変換に失敗: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("gemini_base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini_timeout", time.Duration(0))
	v.SetDefault("storage_backend", BackendSQLite)
	v.SetDefault("sqlite_path", "data/whattodo.db")
}

// Validate はバックエンドごとに必要な設定が揃っているか確認する
func (c *Config) Validate() error {
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))

	switch c.StorageBackend {
	case BackendMemory:
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config: sqliteバックエンドにはSQLITE_PATHが必要です")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: postgresバックエンドにはDATABASE_URLが必要です")
		}
	case BackendSupabase:
		if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
			return fmt.Errorf("config: supabaseバックエンドにはSUPABASE_URLとSUPABASE_ANON_KEYが必要です")
		}
	case BackendFirestore:
		if c.FirestoreProjectID == "" {
			return fmt.Errorf("config: firestoreバックエンドにはFIRESTORE_PROJECT_IDが必要です")
		}
	default:
		return fmt.Errorf("config: 不明なSTORAGE_BACKENDです: %q", c.StorageBackend)
	}

	if c.GeminiTimeout < 0 {
		return fmt.Errorf("config: GEMINI_TIMEOUTは0以上で指定してください")
	}
	return nil
}
