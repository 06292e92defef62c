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

// NumberHistoryRepository implements repositories.NumberHistoryRepository.
type NumberHistoryRepository struct {
	db *mongo.Database
}

// NewNumberHistoryRepository creates a new NumberHistoryRepository.
func NewNumberHistoryRepository(db *mongo.Database) repositories.NumberHistoryRepository {
	return &NumberHistoryRepository{db: db}
}

func (r *NumberHistoryRepository) collection(lottery lotteries.Spec) *mongo.Collection {
	return r.db.Collection(lottery.HistoryCollection)
}

func (r *NumberHistoryRepository) find(ctx context.Context, lottery lotteries.Spec, filter bson.M) ([]models.NumberHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "type", Value: 1}, {Key: "number", Value: 1}})
	cursor, err := r.collection(lottery).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var histories []models.NumberHistory
	if err := cursor.All(ctx, &histories); err != nil {
		return nil, err
	}
	if histories == nil {
		histories = []models.NumberHistory{}
	}
	return histories, nil
}

// FindAll returns every per-number history document of a lottery.
func (r *NumberHistoryRepository) FindAll(ctx context.Context, lottery lotteries.Spec) ([]models.NumberHistory, error) {
	return r.find(ctx, lottery, bson.M{})
}

// FindByType returns the history documents of one number category.
func (r *NumberHistoryRepository) FindByType(ctx context.Context, lottery lotteries.Spec, category string) ([]models.NumberHistory, error) {
	return r.find(ctx, lottery, bson.M{"type": category})
}

// Replace saves a history document keyed by (type, number).
func (r *NumberHistoryRepository) Replace(ctx context.Context, lottery lotteries.Spec, history *models.NumberHistory) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection(lottery).ReplaceOne(ctx,
		bson.M{"type": history.Type, "number": history.Number},
		history,
		opts,
	)
	return err
}

// EnsureIndexes creates the unique (type, number) index.
func (r *NumberHistoryRepository) EnsureIndexes(ctx context.Context, lottery lotteries.Spec) error {
	_, err := r.collection(lottery).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "type", Value: 1}, {Key: "number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
