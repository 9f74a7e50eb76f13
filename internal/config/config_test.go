package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_BACKEND", "GEMINI_MODEL", "GEMINI_TIMEOUT", "SQLITE_PATH"} {
		t.Setenv(key, "")
	}
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, time.Duration(0), cfg.GeminiTimeout)
	assert.Equal(t, BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, "data/whattodo.db", cfg.SQLitePath)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "Memory")
	t.Setenv("GEMINI_TIMEOUT", "45s")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, 45*time.Second, cfg.GeminiTimeout)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{StorageBackend: BackendMemory}, false},
		{"postgres without url", Config{StorageBackend: BackendPostgres}, true},
		{"postgres", Config{StorageBackend: BackendPostgres, DatabaseURL: "postgres://localhost/db"}, false},
		{"supabase without key", Config{StorageBackend: BackendSupabase, SupabaseURL: "https://x.supabase.co"}, true},
		{"firestore without project", Config{StorageBackend: BackendFirestore}, true},
		{"unknown", Config{StorageBackend: "redis"}, true},
		{"negative timeout", Config{StorageBackend: BackendMemory, GeminiTimeout: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
