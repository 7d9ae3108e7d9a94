// trackerd is the issue tracker core service: HTTP/JSON API plus the
// outbox delivery worker pool.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sourcehut/todosrht-core/pkg/api"
	"github.com/sourcehut/todosrht-core/pkg/config"
	"github.com/sourcehut/todosrht-core/pkg/database"
	"github.com/sourcehut/todosrht-core/pkg/queue"
	"github.com/sourcehut/todosrht-core/pkg/services"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("Warning: could not load %s: %v", *envFile, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", *envFile)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	log.Printf("Starting trackerd")
	log.Printf("Origin: %s", cfg.Origin)
	log.Printf("HTTP Port: %s", cfg.HTTPPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	log.Println("✓ Connected to PostgreSQL database")

	entClient := dbClient.Client

	enqueuer := queue.NewOutboxEnqueuer(entClient)
	mentionService := services.NewMentionService(entClient, cfg.Origin)

	svc := api.Services{
		Users:         services.NewUserService(entClient),
		Participants:  services.NewParticipantService(entClient),
		Access:        services.NewAccessService(),
		Trackers:      services.NewTrackerService(entClient, cfg, enqueuer),
		Labels:        services.NewLabelService(entClient, enqueuer),
		Lifecycle:     services.NewLifecycleService(entClient, cfg, mentionService, enqueuer, enqueuer),
		Subscriptions: services.NewSubscriptionService(entClient),
		Notifications: services.NewNotificationService(entClient),
		WebhookSubs:   services.NewWebhookService(entClient),
		ImportExport:  services.NewImportExportService(entClient, cfg),
	}
	log.Println("✓ Services initialized")

	podID, err := os.Hostname()
	if err != nil {
		podID = "trackerd"
	}
	executor := queue.NewExecutor(cfg.SMTP, cfg.NotifyFrom, svc.WebhookSubs)
	pool := queue.NewWorkerPool(podID, entClient, queue.Config{
		WorkerCount:       4,
		PollInterval:      5 * time.Second,
		MaxConcurrent:     8,
		MaxAttempts:       10,
		BaseRetryInterval: 30 * time.Second,
	}, executor)
	if err := pool.Start(ctx); err != nil {
		log.Fatalf("Failed to start delivery worker pool: %v", err)
	}
	defer pool.Stop()
	log.Println("✓ Outbox delivery workers started")

	server := api.NewServer(cfg, dbClient, pool, svc)
	log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
	if err := server.Start(ctx); err != nil {
		log.Fatalf("HTTP server exited: %v", err)
	}
}
