package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voyage/internal/models/db_models"
	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/internal/repositories"
	"voyage/pkg/utils"
)

type CarpoolServiceInterface interface {
	ListCarpools(ctx context.Context, tripID uuid.UUID) ([]response_models.CarpoolResponse, error)
	CreateCarpool(ctx context.Context, tripID, hostID uuid.UUID, request request_models.CreateCarpoolRequest) (response_models.CarpoolResponse, error)
}

type CarpoolService struct {
	carpoolRepo repositories.ICarpoolRepository
	tripRepo    repositories.ITripRepository
	log         *zap.Logger
}

func NewCarpoolService(
	carpoolRepo repositories.ICarpoolRepository,
	tripRepo repositories.ITripRepository,
	log *zap.Logger,
) CarpoolServiceInterface {
	return &CarpoolService{
		carpoolRepo: carpoolRepo,
		tripRepo:    tripRepo,
		log:         log.Named("carpool"),
	}
}

func (s *CarpoolService) ListCarpools(ctx context.Context, tripID uuid.UUID) ([]response_models.CarpoolResponse, error) {
	if err := s.ensureTrip(ctx, tripID); err != nil {
		return nil, err
	}

	carpools, err := s.carpoolRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewCarpoolResponses(carpools), nil
}

func (s *CarpoolService) CreateCarpool(ctx context.Context, tripID, hostID uuid.UUID, request request_models.CreateCarpoolRequest) (response_models.CarpoolResponse, error) {
	from := strings.TrimSpace(request.FromLocation())
	to := strings.TrimSpace(request.ToLocation())
	if from == "" || to == "" || strings.TrimSpace(request.Departure) == "" {
		return response_models.CarpoolResponse{}, utils.ErrCarpoolFields
	}

	departure, err := utils.ParseDeparture(request.Departure)
	if err != nil {
		return response_models.CarpoolResponse{}, err
	}

	seats := 1
	if request.Seats != nil {
		seats = *request.Seats
	}
	if seats < 1 {
		return response_models.CarpoolResponse{}, utils.ErrInvalidSeats
	}

	if err := s.ensureTrip(ctx, tripID); err != nil {
		return response_models.CarpoolResponse{}, err
	}

	carpool := &db_models.Carpool{
		TripID:       tripID,
		HostID:       hostID,
		Seats:        seats,
		FromLocation: from,
		ToLocation:   to,
		Departure:    departure,
	}
	if err := s.carpoolRepo.Create(ctx, carpool); err != nil {
		s.log.Error("creating carpool", zap.String("trip_id", tripID.String()), zap.Error(err))
		return response_models.CarpoolResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewCarpoolResponse(*carpool), nil
}

func (s *CarpoolService) ensureTrip(ctx context.Context, tripID uuid.UUID) error {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	return nil
}
