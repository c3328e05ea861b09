package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"voyage/internal/models/db_models"
)

type ITripRepository interface {
	Create(ctx context.Context, trip *db_models.Trip) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	ListLatest(ctx context.Context, limit int) ([]db_models.Trip, error)
	UpdateItinerary(ctx context.Context, id uuid.UUID, itinerary datatypes.JSON) error
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) ITripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *TripRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *TripRepository) ListLatest(ctx context.Context, limit int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC").
		Limit(limit).
		Find(&trips).Error

	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *TripRepository) UpdateItinerary(ctx context.Context, id uuid.UUID, itinerary datatypes.JSON) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ?", id).
		Update("itinerary", itinerary)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TripRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
