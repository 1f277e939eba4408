package main

import (
	"context"
	"log/slog"
	"os"

	httpadapter "github.com/abhinavsaxena2308/AI-Resume-Builder/internal/adapter/http"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/assistant"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/config"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/export"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/infrastructure/migration"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/render"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/store"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/pkg/ai"
	infra "github.com/abhinavsaxena2308/AI-Resume-Builder/pkg/infrastructure"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx := context.Background()
	cfg := config.Load()

	// infra setup
	var repo store.Repo
	pool, err := infra.NewResumesPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Warn("resumes DB not available, persistence endpoints disabled", "error", err)
	} else {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			slog.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		repo = store.NewPGRepo(pool)
	}

	renderer := render.NewRenderer()
	pipeline := export.NewPipeline(renderer, infra.NewChromedpRenderer())
	summaries := assistant.New(ai.NewClient(cfg.GeminiKey, cfg.GeminiModel))

	h := httpadapter.NewHandler(pipeline, summaries, repo)
	app := httpadapter.NewApp(h, cfg.CORSOrigins)

	slog.Info("server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
