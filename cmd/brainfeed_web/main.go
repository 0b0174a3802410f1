// Package main Brainfeed Web API
// @title Brainfeed Web API
// @version 1.0
// @description Page view models of Brainfeed Magazine, served from the content API or the bundled sample corpus
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/brainfeed/docs"
	"github.com/DjordjeVuckovic/brainfeed/internal/api/router"
	"github.com/DjordjeVuckovic/brainfeed/internal/api/server"
	"github.com/DjordjeVuckovic/brainfeed/internal/bookmark"
	"github.com/DjordjeVuckovic/brainfeed/internal/content"
	"github.com/DjordjeVuckovic/brainfeed/internal/corpus"
	"github.com/DjordjeVuckovic/brainfeed/internal/fallback"
	"github.com/DjordjeVuckovic/brainfeed/internal/fetch"
	"github.com/DjordjeVuckovic/brainfeed/internal/page"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
	"github.com/DjordjeVuckovic/brainfeed/internal/render"
	"github.com/DjordjeVuckovic/brainfeed/internal/storage"
	"github.com/DjordjeVuckovic/brainfeed/internal/storage/factory"
	"github.com/DjordjeVuckovic/brainfeed/internal/validate"
	pkgserver "github.com/DjordjeVuckovic/brainfeed/pkg/server"
)

const storageConnectTimeout = 10 * time.Second

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.Log)

	validator := validate.New()

	sample, err := corpus.Default(validator)
	if err != nil {
		slog.Error("Failed to load fallback corpus", "error", err)
		os.Exit(1)
	}
	static := content.NewStaticProvider(sample)

	executor, err := fetch.NewExecutor(cfg.Fetch)
	if err != nil {
		slog.Error("Failed to create fetch executor", "error", err)
		os.Exit(1)
	}
	cache, err := query.NewCache(cfg.Cache)
	if err != nil {
		slog.Error("Failed to create query cache", "error", err)
		os.Exit(1)
	}
	live := content.NewLiveProvider(executor, validator, cache)

	composer := page.NewComposer(fallback.NewResolver(live, static), render.New())

	connectCtx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
	recorder, err := factory.NewRecorder(connectCtx, &cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create bookmark storage", "error", err)
		os.Exit(1)
	}

	sessions, err := bookmark.NewSessions(recorder, 0)
	if err != nil {
		slog.Error("Failed to create bookmark sessions", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewAllHealthChecker(
		pkgserver.NewOkHealthChecker(),
		storage.NewHealthChecker(recorder),
	)

	s := server.New(cfg.Server, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*").
		SetupMetrics()

	pageRouter := router.NewPageRouter(s.Echo, composer, sessions, router.WithRefresher(live))
	pageRouter.Bind()

	slog.Info("Brainfeed web starting",
		"port", cfg.Server.Port,
		"content_api", cfg.Fetch.BaseURL,
		"storage", cfg.StorageConfig.Type,
	)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if cerr := recorder.Close(); cerr != nil {
		slog.Error("Failed to close bookmark storage", "error", cerr)
	}
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
