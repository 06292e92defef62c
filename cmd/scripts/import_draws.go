package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/loterialab/sorteos-backend/internal/models"
	mongorepo "github.com/loterialab/sorteos-backend/internal/repositories/mongodb"
	"github.com/loterialab/sorteos-backend/internal/services"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
	"github.com/loterialab/sorteos-backend/pkg/mongodb"
)

// Imports a JSON file holding an array of raw draw documents, as copied
// from the upstream buscadorSorteos response. Each draw lands in the
// collection matching its game_id.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "lottery"
	}

	if len(os.Args) < 2 {
		log.Fatal("JSON file path is required as a command line argument")
	}
	jsonFilePath := os.Args[1]

	client, err := mongodb.NewClient(context.Background(), mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)

	result, err := importDraws(db, jsonFilePath)
	if err != nil {
		log.Fatalf("Failed to import draws: %v", err)
	}

	log.Printf("Imported %d of %d draws", result.Saved, result.Total)
	for _, e := range result.Errors {
		log.Printf("Warning: %s", e)
	}
}

func importDraws(db *mongo.Database, jsonFilePath string) (*models.ScrapeResult, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %v", err)
	}

	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON file: %v", err)
	}

	drawRepo := mongorepo.NewDrawRepository(db)
	metadataRepo := mongorepo.NewMetadataRepository(db)

	ctx := context.Background()
	for _, spec := range lotteries.All() {
		if err := drawRepo.EnsureIndexes(ctx, spec); err != nil {
			return nil, fmt.Errorf("failed to create indexes for %s: %v", spec.Slug, err)
		}
	}

	scrapeService := services.NewScrapeService(nil, drawRepo, metadataRepo)
	return scrapeService.Import(ctx, raw)
}
