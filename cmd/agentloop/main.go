// AgentLoop orchestrator server: runs the closed-loop engine, the agent
// worker pool, and the HTTP API over one PostgreSQL store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/agentloop/pkg/api"
	"github.com/codeready-toolchain/agentloop/pkg/board"
	"github.com/codeready-toolchain/agentloop/pkg/config"
	"github.com/codeready-toolchain/agentloop/pkg/database"
	"github.com/codeready-toolchain/agentloop/pkg/dispatch"
	"github.com/codeready-toolchain/agentloop/pkg/engine"
	"github.com/codeready-toolchain/agentloop/pkg/events"
	"github.com/codeready-toolchain/agentloop/pkg/masking"
	"github.com/codeready-toolchain/agentloop/pkg/plugin"
	"github.com/codeready-toolchain/agentloop/pkg/plugin/builtin"
	"github.com/codeready-toolchain/agentloop/pkg/services"
	"github.com/codeready-toolchain/agentloop/pkg/version"
)

// poolShutdownTimeout bounds how long Stop waits for in-flight work cycles.
const poolShutdownTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
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

	settings := config.LoadSettings()
	logger := slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: settings.SlogLevel()}))
	slog.SetDefault(logger)

	slog.Info("Starting agentloop",
		"version", version.Full(),
		"api_host", settings.APIHost,
		"api_port", settings.APIPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Database
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

	// 2. Definition registry and masking
	defs := config.LoadDefinitions(settings.AgentsDir, settings.ProjectsDir, logger)
	masker := masking.NewMaskingService()

	// 3. Event infrastructure: persistent log, NOTIFY listener, live fan-out
	eventService := services.NewEventService(dbClient.Client)
	eventsManager := events.NewManager()
	publisher := events.NewPublisher(eventService, dbClient.DB())

	listener := events.NewListener(dbConfig.DSN(), eventsManager)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start event listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	slog.Info("Event infrastructure initialized")

	// 4. Engine: dispatch registry, worker, orchestrator, scheduler, pool
	bus := plugin.NewHookBus(logger)
	registry := dispatch.NewRegistry(logger)
	prompts := engine.NewPromptBuilder(dbClient.Client, defs, logger)
	worker := engine.NewWorkerEngine(dbClient.Client, registry, prompts, masker,
		publisher, bus, settings.StepTimeout, logger)
	orchestrator := engine.NewOrchestrator(dbClient.Client, publisher, bus, worker, logger)
	scheduler := engine.NewScheduler(orchestrator, settings.TickInterval, logger)
	pool := engine.NewAgentPool(dbClient.Client, orchestrator, settings.PoolSize,
		settings.AgentWorkInterval, logger)

	// 5. Board adapter. Stream activity wakes the tick scheduler so inbound
	// work is picked up ahead of the next interval.
	boardClient := board.NewClient(settings.MCBaseURL, settings.MCToken, settings.MCOrgID)
	ingestor := board.NewIngestor(boardClient, func(string) { scheduler.Wake() }, logger)

	// 6. Plugins. Startup hooks register dispatchers and start the streams.
	builders := builtin.Builders(builtin.Deps{
		Client:    dbClient.Client,
		Settings:  settings,
		Board:     boardClient,
		Ingestor:  ingestor,
		Publisher: publisher,
		Registry:  registry,
		Logger:    logger,
	})
	plugins := plugin.NewManager(settings.PluginsDir, settings.PluginsEnabled, builders, bus, logger)
	plugins.LoadAll()
	bus.Dispatch(ctx, plugin.HookOnStartup, plugin.HookContext{})

	// 7. Start the engine loops
	pool.Start(ctx)
	scheduler.Start(ctx)

	// 8. HTTP server
	server := api.NewServer(settings, dbClient, registry, publisher, logger)
	server.SetOrchestrator(orchestrator)
	server.SetPool(pool)
	server.SetScheduler(scheduler)
	server.SetBoardClient(boardClient)
	server.SetIngestor(ingestor)
	server.SetPlugins(plugins)
	server.SetEventsManager(eventsManager)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", settings.APIHost, settings.APIPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("agentloop started successfully",
		"workers", settings.PoolSize,
		"tick_interval", settings.TickInterval)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown, reverse boot order
	scheduler.Stop()
	slog.Info("Tick scheduler stopped")

	poolCtx, poolCancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer poolCancel()
	poolDone := make(chan struct{})
	go func() {
		pool.Stop()
		close(poolDone)
	}()
	select {
	case <-poolDone:
		slog.Info("Agent pool stopped gracefully")
	case <-poolCtx.Done():
		slog.Warn("Agent pool shutdown timeout exceeded, in-flight steps will be failed by lifecycle guards")
	}

	// Shutdown hooks stop the board streams and report outbound state
	bus.Dispatch(ctx, plugin.HookOnShutdown, plugin.HookContext{})
	registry.Shutdown(ctx)

	// Closing subscriptions unblocks SSE handlers so the HTTP drain finishes
	eventsManager.CloseAll()

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
