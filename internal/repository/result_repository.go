package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/courseboard/internal/model"
	"gorm.io/gorm"
)

// ResultRepository is append-only. Results are never edited once written.
type ResultRepository interface {
	List(ctx context.Context) ([]model.Result, error)
	Append(ctx context.Context, result *model.Result) error
	ListRecentByUsername(ctx context.Context, username string, limit int) ([]model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) List(ctx context.Context) ([]model.Result, error) {
	var results []model.Result
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&results).Error; err != nil {
		return nil, wrap("list results", err)
	}
	return results, nil
}

// Append always inserts a new record; repeated attempts accumulate.
func (r *resultRepository) Append(ctx context.Context, result *model.Result) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	return wrap("append result", r.db.WithContext(ctx).Create(result).Error)
}

func (r *resultRepository) ListRecentByUsername(ctx context.Context, username string, limit int) ([]model.Result, error) {
	var results []model.Result
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("date DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, wrap("list recent results", err)
	}
	return results, nil
}
