package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voyage/internal/infra"
	"voyage/internal/models/db_models"
)

// ErrPendingExists is returned by CreatePending when the requester already
// has a pending request for the trip.
var ErrPendingExists = errors.New("pending request exists")

type ITripRequestRepository interface {
	CreatePending(ctx context.Context, req *db_models.TripRequest) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.TripRequest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.TripRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error)
}

type TripRequestRepository struct {
	db *gorm.DB
}

func NewTripRequestRepository(db *gorm.DB) ITripRequestRepository {
	return &TripRequestRepository{db: db}
}

// CreatePending locks the trip row so two concurrent requests from the same
// user cannot both pass the duplicate check.
func (r *TripRequestRepository) CreatePending(ctx context.Context, req *db_models.TripRequest) (err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		err = infra.ReleaseTransaction(tx, err)
	}()

	var trip db_models.Trip
	if err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&trip, "id = ?", req.TripID).Error; err != nil {
		return err
	}

	var count int64
	if err = tx.Model(&db_models.TripRequest{}).
		Where("trip_id = ? AND requester_id = ? AND status = ?", req.TripID, req.RequesterID, db_models.RequestPending).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		err = ErrPendingExists
		return err
	}

	req.Status = db_models.RequestPending
	err = tx.Create(req).Error
	return err
}

func (r *TripRequestRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.TripRequest, error) {
	var reqs []db_models.TripRequest
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&reqs).Error

	if err != nil {
		return nil, err
	}

	return reqs, nil
}

func (r *TripRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.TripRequest, error) {
	var req db_models.TripRequest
	err := r.db.WithContext(ctx).
		Preload("Requester").
		First(&req, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &req, nil
}

// UpdateStatus moves a request from one status to another and reports
// whether the row was still in the expected status.
func (r *TripRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.TripRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
