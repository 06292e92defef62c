package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/loterialab/sorteos-backend/api/routes"
	"github.com/loterialab/sorteos-backend/internal/config"
	"github.com/loterialab/sorteos-backend/internal/handlers"
	mongorepo "github.com/loterialab/sorteos-backend/internal/repositories/mongodb"
	"github.com/loterialab/sorteos-backend/internal/services"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
	"github.com/loterialab/sorteos-backend/pkg/mongodb"
	"github.com/loterialab/sorteos-backend/pkg/resultsapi"
)

func main() {
	// A missing .env is fine, the environment takes over.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(context.Background(), cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	drawRepo := mongorepo.NewDrawRepository(db)
	featureRepo := mongorepo.NewFeatureRepository(db)
	historyRepo := mongorepo.NewNumberHistoryRepository(db)
	metadataRepo := mongorepo.NewMetadataRepository(db)
	adminUserRepo := mongorepo.NewAdminUserRepository(db)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelIndexes()
	for _, spec := range lotteries.All() {
		if err := drawRepo.EnsureIndexes(indexCtx, spec); err != nil {
			log.Fatalf("Failed to create draw indexes for %s: %v", spec.Slug, err)
		}
		if err := featureRepo.EnsureIndexes(indexCtx, spec); err != nil {
			log.Fatalf("Failed to create feature indexes for %s: %v", spec.Slug, err)
		}
		if err := historyRepo.EnsureIndexes(indexCtx, spec); err != nil {
			log.Fatalf("Failed to create history indexes for %s: %v", spec.Slug, err)
		}
	}

	// Services
	fetcher := resultsapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.SiteOrigin, cfg.Upstream.Mock, cfg.Upstream.RequestDelayMS)
	drawService := services.NewDrawService(drawRepo)
	featureService := services.NewFeatureService(drawRepo, featureRepo, historyRepo)
	historyService := services.NewHistoryService(historyRepo)
	statsService := services.NewStatsService(drawRepo)
	scrapeService := services.NewScrapeService(fetcher, drawRepo, metadataRepo)
	authService := services.NewAuthService(adminUserRepo, cfg)

	// Handlers
	handlerDeps := &routes.HandlerDependencies{
		DrawHandler:    handlers.NewDrawHandler(drawService),
		FeatureHandler: handlers.NewFeatureHandler(featureService, historyService),
		HistoryHandler: handlers.NewHistoryHandler(historyService),
		StatsHandler:   handlers.NewStatsHandler(statsService),
		ScrapeHandler:  handlers.NewScrapeHandler(scrapeService),
		AuthHandler:    handlers.NewAuthHandler(authService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
