package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"voyage/internal/models/db_models"
	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/internal/repositories"
	"voyage/pkg/utils"
)

const discoverLimit = 20

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, ownerID uuid.UUID, request request_models.CreateTripRequest) (response_models.TripResponse, error)
	GetTrip(ctx context.Context, id uuid.UUID) (response_models.TripResponse, error)
	Discover(ctx context.Context) ([]response_models.TripResponse, error)
}

type TripService struct {
	tripRepo repositories.ITripRepository
	log      *zap.Logger
}

func NewTripService(tripRepo repositories.ITripRepository, log *zap.Logger) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		log:      log.Named("trip"),
	}
}

func (t *TripService) CreateTrip(ctx context.Context, ownerID uuid.UUID, request request_models.CreateTripRequest) (response_models.TripResponse, error) {
	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return response_models.TripResponse{}, err
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return response_models.TripResponse{}, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return response_models.TripResponse{}, utils.ErrInvalidDateRange
	}
	if request.BudgetCents != nil && *request.BudgetCents < 0 {
		return response_models.TripResponse{}, utils.ErrInvalidBudget
	}

	trip := &db_models.Trip{
		OwnerID:       ownerID,
		Title:         strings.TrimSpace(request.Title),
		StartDate:     start,
		EndDate:       end,
		BudgetCents:   request.BudgetCents,
		Location:      strings.TrimSpace(request.Location),
		Vehicle:       strings.TrimSpace(request.Vehicle),
		Accessibility: optionalJSON(request.Accessibility),
	}

	if err := t.tripRepo.Create(ctx, trip); err != nil {
		t.log.Error("creating trip", zap.Error(err))
		return response_models.TripResponse{}, utils.ErrDatabaseError
	}

	t.log.Info("trip created", zap.String("trip_id", trip.ID.String()), zap.String("owner_id", ownerID.String()))
	return response_models.NewTripResponse(*trip), nil
}

func (t *TripService) GetTrip(ctx context.Context, id uuid.UUID) (response_models.TripResponse, error) {
	trip, err := t.tripRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.TripResponse{}, utils.ErrDatabaseError
	}
	if trip == nil {
		return response_models.TripResponse{}, utils.ErrTripNotFound
	}
	return response_models.NewTripResponse(*trip), nil
}

func (t *TripService) Discover(ctx context.Context) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListLatest(ctx, discoverLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewTripResponses(trips), nil
}

// optionalJSON stores valid JSON as-is and drops anything else, including null.
func optionalJSON(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 || !json.Valid(raw) || string(raw) == "null" {
		return nil
	}
	return datatypes.JSON(raw)
}
