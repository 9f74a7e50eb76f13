package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"WhatToDo-App/internal/application"
	"WhatToDo-App/internal/config"
	domainrepo "WhatToDo-App/internal/domain/repository"
	"WhatToDo-App/internal/handler"
	"WhatToDo-App/internal/infrastructure/ai"
	"WhatToDo-App/internal/infrastructure/database"
	"WhatToDo-App/internal/infrastructure/firestore"
	"WhatToDo-App/internal/repository"
	"WhatToDo-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	if cfg.GeminiAPIKey == "" {
		fmt.Println("⚠️  GEMINI_API_KEYが設定されていません（アクティビティ検索は失敗します）")
	}

	ctx := context.Background()

	fmt.Printf("Initializing %s storage...\n", cfg.StorageBackend)
	blobs, cleanup, err := newBlobRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("ストレージ初期化失敗: %v", err)
	}
	defer cleanup()
	fmt.Println("✅ Storage ready!")

	geminiClient := ai.NewGeminiClient(ai.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.GeminiTimeout,
	})
	curator := ai.NewGeminiActivityCurator(geminiClient)

	router := handler.NewRouter(
		handler.NewRecommendationHandler(usecase.NewRecommendationUseCase(curator)),
		handler.NewActivityHandler(application.NewActivityStore(blobs)),
		handler.NewPlanHandler(application.NewPlanStore(blobs)),
	)

	addr := ":" + cfg.Port
	fmt.Printf("WhatToDo-App server starting on %s...\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}

// newBlobRepository は設定に応じた永続化バックエンドを作成する
func newBlobRepository(ctx context.Context, cfg *config.Config) (domainrepo.BlobRepository, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		return repository.NewMemoryBlobRepository(), noop, nil

	case config.BackendSQLite:
		client, err := database.NewSQLiteClient(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewSQLBlobRepository(client.DB, repository.DialectSQLite)
		if err := repo.EnsureSchema(ctx); err != nil {
			client.Close()
			return nil, nil, err
		}
		return repo, func() { client.Close() }, nil

	case config.BackendPostgres:
		client, err := database.NewPostgreSQLClient(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewSQLBlobRepository(client.DB, repository.DialectPostgres)
		if err := repo.EnsureSchema(ctx); err != nil {
			client.Close()
			return nil, nil, err
		}
		return repo, func() { client.Close() }, nil

	case config.BackendSupabase:
		client, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, nil, err
		}
		return repository.NewSupabaseBlobRepository(client), noop, nil

	case config.BackendFirestore:
		client, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProjectID, cfg.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewFirestoreBlobRepository(client.GetClient()), func() { client.Close() }, nil
	}

	return nil, nil, fmt.Errorf("不明なストレージバックエンド: %s", cfg.StorageBackend)
}
