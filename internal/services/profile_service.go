package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voyage/internal/models/response_models"
	"voyage/internal/repositories"
	"voyage/pkg/utils"
)

var firstTripAchievement = response_models.Achievement{
	ID: "first-trip",
	Achievement: response_models.AchievementDetail{
		Title:       "First Trip Planned",
		Description: "You generated your first AI-powered itinerary!",
		Icon:        "🗺️",
	},
}

type ProfileServiceInterface interface {
	Profile(ctx context.Context, id uuid.UUID) (response_models.ProfileResponse, error)
}

type ProfileService struct {
	accountRepo repositories.AccountRepository
	tripRepo    repositories.ITripRepository
	log         *zap.Logger
}

func NewProfileService(
	accountRepo repositories.AccountRepository,
	tripRepo repositories.ITripRepository,
	log *zap.Logger,
) ProfileServiceInterface {
	return &ProfileService{
		accountRepo: accountRepo,
		tripRepo:    tripRepo,
		log:         log.Named("ProfileService"),
	}
}

// Profile returns the account with trip stats and the achievements it has
// unlocked. Follower counts are always zero.
func (p *ProfileService) Profile(ctx context.Context, id uuid.UUID) (response_models.ProfileResponse, error) {
	account, err := p.accountRepo.FindById(ctx, id)
	if err != nil {
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.ProfileResponse{}, utils.ErrAccountNotFound
	}

	trips, err := p.tripRepo.CountByOwner(ctx, id)
	if err != nil {
		p.log.Error("counting trips", zap.String("account_id", id.String()), zap.Error(err))
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}

	achievements := []response_models.Achievement{}
	if trips > 0 {
		achievements = append(achievements, firstTripAchievement)
	}

	return response_models.ProfileResponse{
		User: response_models.ProfileUser{
			UserResponse: response_models.NewUserResponse(*account),
			Username:     username(account.Email),
			Stats:        response_models.ProfileStats{Trips: trips},
		},
		Achievements: achievements,
	}, nil
}

// username is the local part of the email prefixed with "@".
func username(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return "@" + local
}
