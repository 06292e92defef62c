package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/loterialab/sorteos-backend/internal/models"
	"github.com/loterialab/sorteos-backend/internal/repositories"
)

// MetadataRepository implements repositories.MetadataRepository on the
// scraper_metadata collection.
type MetadataRepository struct {
	collection *mongo.Collection
}

// NewMetadataRepository creates a new MetadataRepository.
func NewMetadataRepository(db *mongo.Database) repositories.MetadataRepository {
	return &MetadataRepository{
		collection: db.Collection("scraper_metadata"),
	}
}

// GetLastDrawDate returns the last saved draw date for a lottery, or ""
// when none has been recorded yet.
func (r *MetadataRepository) GetLastDrawDate(ctx context.Context, lottery string) (string, error) {
	var meta models.ScraperMetadata
	err := r.collection.FindOne(ctx, bson.M{"lottery": lottery}).Decode(&meta)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", err
	}
	return meta.LastDrawDate, nil
}

// SetLastDrawDate upserts the last draw date for a lottery.
func (r *MetadataRepository) SetLastDrawDate(ctx context.Context, lottery, date string) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"lottery": lottery},
		bson.M{"$set": bson.M{"last_draw_date": date}},
		opts,
	)
	return err
}
