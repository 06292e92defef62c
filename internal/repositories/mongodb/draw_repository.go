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

// DrawRepository implements repositories.DrawRepository on one MongoDB
// collection per lottery (la_primitiva, euromillones, el_gordo).
type DrawRepository struct {
	db *mongo.Database
}

// NewDrawRepository creates a new DrawRepository.
func NewDrawRepository(db *mongo.Database) repositories.DrawRepository {
	return &DrawRepository{db: db}
}

func (r *DrawRepository) collection(lottery lotteries.Spec) *mongo.Collection {
	return r.db.Collection(lottery.Collection)
}

// dateFilter builds the fecha_sorteo range filter. Dates are stored as
// "YYYY-MM-DD HH:MM:SS" strings, so the bounds are string bounds.
func dateFilter(f repositories.DrawFilter) bson.M {
	filter := bson.M{}
	dates := bson.M{}
	if f.FromDate != "" {
		dates["$gte"] = f.FromDate + " 00:00:00"
	}
	if f.ToDate != "" {
		dates["$lte"] = f.ToDate + " 23:59:59"
	}
	if len(dates) > 0 {
		filter["fecha_sorteo"] = dates
	}
	return filter
}

// FindPage returns one page of draws sorted by fecha_sorteo descending.
func (r *DrawRepository) FindPage(ctx context.Context, lottery lotteries.Spec, f repositories.DrawFilter) ([]models.Draw, int64, error) {
	coll := r.collection(lottery)
	filter := dateFilter(f)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.M{"fecha_sorteo": -1}).
		SetSkip(f.Skip).
		SetLimit(f.Limit)
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var draws []models.Draw
	if err := cursor.All(ctx, &draws); err != nil {
		return nil, 0, err
	}
	if draws == nil {
		draws = []models.Draw{}
	}
	for i := range draws {
		draws[i].GameName = lottery.Name
	}
	return draws, total, nil
}

// FindAllAscending returns every draw of a lottery, oldest first.
func (r *DrawRepository) FindAllAscending(ctx context.Context, lottery lotteries.Spec) ([]models.Draw, error) {
	opts := options.Find().SetSort(bson.M{"fecha_sorteo": 1})
	cursor, err := r.collection(lottery).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var draws []models.Draw
	if err := cursor.All(ctx, &draws); err != nil {
		return nil, err
	}
	if draws == nil {
		draws = []models.Draw{}
	}
	for i := range draws {
		draws[i].GameName = lottery.Name
	}
	return draws, nil
}

// Upsert replaces the raw document with the same id_sorteo.
func (r *DrawRepository) Upsert(ctx context.Context, lottery lotteries.Spec, doc bson.M) error {
	drawID := doc["id_sorteo"]
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection(lottery).ReplaceOne(ctx, bson.M{"id_sorteo": drawID}, doc, opts)
	return err
}

// EnsureIndexes creates the unique id_sorteo index.
func (r *DrawRepository) EnsureIndexes(ctx context.Context, lottery lotteries.Spec) error {
	_, err := r.collection(lottery).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id_sorteo", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
