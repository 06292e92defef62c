// Package repositories defines the storage interfaces implemented by the
// mongodb subpackage.
package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/loterialab/sorteos-backend/internal/models"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

// DrawFilter restricts a paginated draw query. Dates are "YYYY-MM-DD" and
// compared against the full "YYYY-MM-DD HH:MM:SS" fecha_sorteo strings.
type DrawFilter struct {
	FromDate string
	ToDate   string
	Skip     int64
	Limit    int64
}

// DrawRepository stores raw draw documents, one collection per lottery.
type DrawRepository interface {
	// FindPage returns one page of draws sorted by fecha_sorteo descending,
	// plus the total matching count.
	FindPage(ctx context.Context, lottery lotteries.Spec, filter DrawFilter) ([]models.Draw, int64, error)
	// FindAllAscending returns every draw of a lottery, oldest first, for
	// feature builds and time series.
	FindAllAscending(ctx context.Context, lottery lotteries.Spec) ([]models.Draw, error)
	// Upsert replaces the raw document with the same id_sorteo, inserting
	// if absent.
	Upsert(ctx context.Context, lottery lotteries.Spec, doc bson.M) error
	// EnsureIndexes creates the unique id_sorteo index.
	EnsureIndexes(ctx context.Context, lottery lotteries.Spec) error
}

// FeatureRepository stores per-draw feature rows.
type FeatureRepository interface {
	FindPage(ctx context.Context, lottery lotteries.Spec, skip, limit int64) ([]models.FeatureRow, int64, error)
	Upsert(ctx context.Context, lottery lotteries.Spec, row *models.FeatureRow) error
	EnsureIndexes(ctx context.Context, lottery lotteries.Spec) error
}

// NumberHistoryRepository stores per-number appearance histories.
type NumberHistoryRepository interface {
	FindAll(ctx context.Context, lottery lotteries.Spec) ([]models.NumberHistory, error)
	FindByType(ctx context.Context, lottery lotteries.Spec, category string) ([]models.NumberHistory, error)
	Replace(ctx context.Context, lottery lotteries.Spec, history *models.NumberHistory) error
	EnsureIndexes(ctx context.Context, lottery lotteries.Spec) error
}

// MetadataRepository tracks scraper progress per lottery.
type MetadataRepository interface {
	GetLastDrawDate(ctx context.Context, lottery string) (string, error)
	SetLastDrawDate(ctx context.Context, lottery, date string) error
}

// AdminUserRepository stores operator accounts.
type AdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Create(ctx context.Context, user *models.AdminUser) error
}
