package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/loterialab/sorteos-backend/internal/models"
	"github.com/loterialab/sorteos-backend/internal/repositories"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

// FeatureRepository implements repositories.FeatureRepository.
type FeatureRepository struct {
	db *mongo.Database
}

// NewFeatureRepository creates a new FeatureRepository.
func NewFeatureRepository(db *mongo.Database) repositories.FeatureRepository {
	return &FeatureRepository{db: db}
}

func (r *FeatureRepository) collection(lottery lotteries.Spec) *mongo.Collection {
	return r.db.Collection(lottery.FeatureCollection)
}

// FindPage returns one page of feature rows sorted by draw_date descending.
func (r *FeatureRepository) FindPage(ctx context.Context, lottery lotteries.Spec, skip, limit int64) ([]models.FeatureRow, int64, error) {
	coll := r.collection(lottery)

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.M{"draw_date": -1}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var rows []models.FeatureRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, err
	}
	if rows == nil {
		rows = []models.FeatureRow{}
	}
	return rows, total, nil
}

// Upsert saves a feature row keyed by draw_id.
func (r *FeatureRepository) Upsert(ctx context.Context, lottery lotteries.Spec, row *models.FeatureRow) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.collection(lottery).UpdateOne(ctx,
		bson.M{"draw_id": row.DrawID},
		bson.M{"$set": row},
		opts,
	)
	return err
}

// EnsureIndexes creates the unique draw_id index.
func (r *FeatureRepository) EnsureIndexes(ctx context.Context, lottery lotteries.Spec) error {
	_, err := r.collection(lottery).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "draw_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
