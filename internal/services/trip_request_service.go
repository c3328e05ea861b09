package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voyage/internal/models/db_models"
	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/internal/repositories"
	"voyage/pkg/utils"
)

type TripRequestServiceInterface interface {
	RequestToJoin(ctx context.Context, tripID, requesterID uuid.UUID, request request_models.JoinTripRequest) (response_models.TripRequestResponse, error)
	ListRequests(ctx context.Context, tripID, callerID uuid.UUID) ([]response_models.TripRequestResponse, error)
	Decide(ctx context.Context, tripID, requestID, callerID uuid.UUID, status string) (response_models.TripRequestResponse, error)
}

type TripRequestService struct {
	requestRepo repositories.ITripRequestRepository
	tripRepo    repositories.ITripRepository
	log         *zap.Logger
}

func NewTripRequestService(
	requestRepo repositories.ITripRequestRepository,
	tripRepo repositories.ITripRepository,
	log *zap.Logger,
) TripRequestServiceInterface {
	return &TripRequestService{
		requestRepo: requestRepo,
		tripRepo:    tripRepo,
		log:         log.Named("trip_request"),
	}
}

func (s *TripRequestService) RequestToJoin(ctx context.Context, tripID, requesterID uuid.UUID, request request_models.JoinTripRequest) (response_models.TripRequestResponse, error) {
	trip, err := s.trip(ctx, tripID)
	if err != nil {
		return response_models.TripRequestResponse{}, err
	}
	if trip.OwnerID == requesterID {
		return response_models.TripRequestResponse{}, utils.ErrOwnTripRequest
	}

	req := &db_models.TripRequest{
		TripID:      tripID,
		RequesterID: requesterID,
		Message:     strings.TrimSpace(request.Message),
	}
	if err := s.requestRepo.CreatePending(ctx, req); err != nil {
		if errors.Is(err, repositories.ErrPendingExists) {
			return response_models.TripRequestResponse{}, utils.ErrDuplicateRequest
		}
		s.log.Error("creating trip request", zap.String("trip_id", tripID.String()), zap.Error(err))
		return response_models.TripRequestResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewTripRequestResponse(*req), nil
}

func (s *TripRequestService) ListRequests(ctx context.Context, tripID, callerID uuid.UUID) ([]response_models.TripRequestResponse, error) {
	if _, err := s.ownedTrip(ctx, tripID, callerID); err != nil {
		return nil, err
	}

	reqs, err := s.requestRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewTripRequestResponses(reqs), nil
}

// Decide accepts or rejects a pending request. status must be
// db_models.RequestAccepted or db_models.RequestRejected.
func (s *TripRequestService) Decide(ctx context.Context, tripID, requestID, callerID uuid.UUID, status string) (response_models.TripRequestResponse, error) {
	if _, err := s.ownedTrip(ctx, tripID, callerID); err != nil {
		return response_models.TripRequestResponse{}, err
	}

	req, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return response_models.TripRequestResponse{}, utils.ErrDatabaseError
	}
	if req == nil || req.TripID != tripID {
		return response_models.TripRequestResponse{}, utils.ErrRequestNotFound
	}
	if req.Status != db_models.RequestPending {
		return response_models.TripRequestResponse{}, utils.ErrRequestNotPending
	}

	updated, err := s.requestRepo.UpdateStatus(ctx, requestID, db_models.RequestPending, status)
	if err != nil {
		return response_models.TripRequestResponse{}, utils.ErrDatabaseError
	}
	if !updated {
		return response_models.TripRequestResponse{}, utils.ErrRequestNotPending
	}

	s.log.Info("trip request decided",
		zap.String("trip_id", tripID.String()),
		zap.String("request_id", requestID.String()),
		zap.String("status", status))

	req.Status = status
	return response_models.NewTripRequestResponse(*req), nil
}

func (s *TripRequestService) trip(ctx context.Context, tripID uuid.UUID) (*db_models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripRequestService) ownedTrip(ctx context.Context, tripID, callerID uuid.UUID) (*db_models.Trip, error) {
	trip, err := s.trip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.OwnerID != callerID {
		return nil, utils.ErrNotTripOwner
	}
	return trip, nil
}
