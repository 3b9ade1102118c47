// keywatch polls monitored Reddit-like communities for keyword matches and
// dispatches alerts to per-tenant chat webhooks.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/keywatch/keywatch/pkg/api"
	"github.com/keywatch/keywatch/pkg/config"
	"github.com/keywatch/keywatch/pkg/database"
	"github.com/keywatch/keywatch/pkg/dispatch"
	"github.com/keywatch/keywatch/pkg/ingest"
	"github.com/keywatch/keywatch/pkg/matchengine"
	"github.com/keywatch/keywatch/pkg/pipeline"
	"github.com/keywatch/keywatch/pkg/retention"
	"github.com/keywatch/keywatch/pkg/scheduler"
	"github.com/keywatch/keywatch/pkg/services"
	"github.com/keywatch/keywatch/pkg/version"
	"github.com/keywatch/keywatch/pkg/webhook"
)

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

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", envPath)
	}

	logger := slog.Default()

	httpPort := getEnv("HTTP_PORT", "8080")
	ginMode := getEnv("GIN_MODE", "release")

	log.Printf("Starting %s", version.Full())
	log.Printf("HTTP Port: %s", httpPort)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Printf("Error closing database client: %v", err)
		}
	}()
	log.Println("connected to PostgreSQL database")

	tenantService := services.NewTenantService(dbClient.Client)
	communityService := services.NewCommunityService(dbClient.Client)
	ruleService := services.NewRuleService(dbClient.Client)
	contentService := services.NewContentService(dbClient.Client)
	matchService := services.NewMatchService(dbClient.Client)
	webhookService := services.NewWebhookEndpointService(dbClient.Client, cfg.Webhook.AllowPattern)

	feedClient := ingest.NewHTTPFeedClient(cfg.Ingest.UpstreamTimeout, cfg.Ingest.UserAgent)
	ingestor := ingest.NewIngestor(feedClient, communityService, contentService, cfg.Ingest, logger)

	engine := matchengine.NewEngine(ruleService, communityService, matchService, logger)

	webhookClient := webhook.NewClient(cfg.Dispatch.WebhookTimeout, cfg.Dispatch.SendRateLimitPerSecond, cfg.Dispatch.MaxAttempts, cfg.Dispatch.InitialBackoff, logger)
	dispatcher := dispatch.NewDispatcher(matchService, matchService, webhookService, tenantService, webhookClient, nil, cfg.Dispatch, logger)

	pl := pipeline.NewPipeline(ingestor, engine, dispatcher, logger)
	sweeper := retention.NewSweeper(matchService, contentService, cfg.Retention, logger)
	sched := scheduler.New(pl, sweeper, cfg.Pipeline, cfg.Retention, logger)
	sched.Start(ctx)
	defer sched.Stop()

	server := api.NewServer(dbClient, ginMode)

	log.Printf("HTTP server listening on :%s", httpPort)
	log.Printf("Health check available at: http://localhost:%s/health", httpPort)
	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Run(":" + httpPort) }()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutdown signal received")
	}
}
