package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voyage/internal/models/db_models"
)

type ICarpoolRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.Carpool, error)
	Create(ctx context.Context, carpool *db_models.Carpool) error
}

type CarpoolRepository struct {
	db *gorm.DB
}

func NewCarpoolRepository(db *gorm.DB) ICarpoolRepository {
	return &CarpoolRepository{db: db}
}

func (r *CarpoolRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.Carpool, error) {
	var carpools []db_models.Carpool
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("departure ASC").
		Find(&carpools).Error

	if err != nil {
		return nil, err
	}

	return carpools, nil
}

func (r *CarpoolRepository) Create(ctx context.Context, carpool *db_models.Carpool) error {
	return r.db.WithContext(ctx).Create(carpool).Error
}
