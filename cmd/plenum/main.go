// Plenum council server — provides the HTTP API, manages queue workers, and
// orchestrates deliberation processing.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/plenumhq/plenum/pkg/api"
	"github.com/plenumhq/plenum/pkg/cleanup"
	"github.com/plenumhq/plenum/pkg/config"
	"github.com/plenumhq/plenum/pkg/database"
	"github.com/plenumhq/plenum/pkg/events"
	"github.com/plenumhq/plenum/pkg/llm"
	"github.com/plenumhq/plenum/pkg/queue"
	"github.com/plenumhq/plenum/pkg/services"
	"github.com/plenumhq/plenum/pkg/slack"
	"github.com/plenumhq/plenum/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting plenum",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	deliberationService := services.NewDeliberationService(dbClient.Client, cfg)
	scoreService := services.NewScoreService(dbClient.Client)
	chatService := services.NewChatService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup: rows this pod abandoned in a crash
	if count, err := deliberationService.FailStartupOrphans(ctx, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the orphan scan loop will catch stragglers
	} else if count > 0 {
		slog.Info("Failed startup orphans", "count", count)
	}

	// 5. LLM provider
	providerCfg, err := cfg.GetLLMProvider(cfg.Defaults.LLMProvider)
	if err != nil {
		slog.Error("Default LLM provider not configured", "error", err)
		os.Exit(1)
	}
	provider, err := llm.NewProviderFromConfig(providerCfg)
	if err != nil {
		slog.Error("Failed to initialize LLM provider", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := provider.Close(); err != nil {
			slog.Error("Error closing LLM provider", "error", err)
		}
	}()
	slog.Info("LLM provider initialized",
		"provider", cfg.Defaults.LLMProvider, "type", providerCfg.Type)

	// Warn-only gateway probe: a dead gateway should not block boot, the
	// queue retries per deliberation anyway.
	probeCtx, probeCancel := context.WithTimeout(ctx, 10*time.Second)
	if supported, err := llm.Probe(probeCtx, provider); supported && err != nil {
		slog.Warn("LLM gateway health probe failed", "error", err)
	}
	probeCancel()

	// 6. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 7. Slack notifications (optional)
	var slackService *slack.Service
	if cfg.Slack != nil && cfg.Slack.Enabled {
		slackService = slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.Slack.TokenEnv),
			Channel:      cfg.Slack.Channel,
			DashboardURL: cfg.DashboardURL,
		})
		if slackService != nil {
			slog.Info("Slack notifications enabled", "channel", cfg.Slack.Channel)
		} else {
			slog.Warn("Slack enabled but token or channel missing; notifications disabled")
		}
	}

	// 8. Queue: executor, worker pool, chat executor
	keyStash := queue.NewAPIKeyStash()
	executor := queue.NewRealDeliberationExecutor(cfg, provider, deliberationService, eventPublisher, keyStash)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor,
		deliberationService, eventService, eventPublisher, slackService)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	chatExecutor := queue.NewChatExecutor(podID, provider, deliberationService, chatService, eventPublisher)
	slog.Info("Chat executor initialized")

	// 9. Retention loop
	cleanupService := cleanup.NewService(cfg.Retention, deliberationService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. HTTP server
	gin.SetMode(gin.ReleaseMode)
	server := api.NewServer(cfg, dbClient, deliberationService, scoreService, chatService)
	server.SetEventPublisher(eventPublisher)
	server.SetConnectionManager(connManager)
	server.SetWorkerPool(workerPool)
	server.SetChatExecutor(chatExecutor)
	server.SetKeyStash(keyStash)

	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Plenum started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	// Stop the chat executor first (chat turns are lighter, shorter)
	chatDone := make(chan struct{})
	go func() {
		chatExecutor.Stop()
		close(chatDone)
	}()

	select {
	case <-chatDone:
		slog.Info("Chat executor stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Chat executor shutdown timeout exceeded")
	}

	// Stop the worker pool (wait for active deliberations to complete)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete deliberations will be orphan-recovered")
	}

	// Stop the HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
