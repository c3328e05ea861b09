package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voyage/internal/models/db_models"
	"voyage/pkg/utils"
)

func newProfileFixture(t *testing.T) (*fakeAccounts, *fakeTrips, ProfileServiceInterface, uuid.UUID) {
	t.Helper()
	accounts := newFakeAccounts()
	account := &db_models.Account{Email: "mira.k@example.com", Name: "Mira"}
	require.NoError(t, accounts.Insert(context.Background(), account))
	trips := newFakeTrips()
	return accounts, trips, NewProfileService(accounts, trips, zap.NewNop()), account.ID
}

func TestProfileService_NoTripsYet(t *testing.T) {
	_, _, svc, id := newProfileFixture(t)

	profile, err := svc.Profile(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "@mira.k", profile.User.Username)
	assert.Equal(t, "Mira", profile.User.Name)
	assert.Equal(t, "", profile.User.Location)
	assert.Equal(t, int64(0), profile.User.Stats.Trips)
	assert.Equal(t, 0, profile.User.Stats.Followers)
	assert.NotNil(t, profile.Achievements)
	assert.Empty(t, profile.Achievements)
}

func TestProfileService_FirstTripAchievement(t *testing.T) {
	_, trips, svc, id := newProfileFixture(t)
	ctx := context.Background()
	require.NoError(t, trips.Create(ctx, &db_models.Trip{OwnerID: id, Title: "Goa"}))
	require.NoError(t, trips.Create(ctx, &db_models.Trip{OwnerID: id, Title: "Hampi"}))
	require.NoError(t, trips.Create(ctx, &db_models.Trip{OwnerID: uuid.New(), Title: "Not mine"}))

	profile, err := svc.Profile(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, int64(2), profile.User.Stats.Trips)
	require.Len(t, profile.Achievements, 1)
	assert.Equal(t, "first-trip", profile.Achievements[0].ID)
	assert.Equal(t, "First Trip Planned", profile.Achievements[0].Achievement.Title)
}

func TestProfileService_Errors(t *testing.T) {
	_, trips, svc, id := newProfileFixture(t)
	ctx := context.Background()

	_, err := svc.Profile(ctx, uuid.New())
	assert.True(t, errors.Is(err, utils.ErrAccountNotFound))

	trips.countErr = errors.New("connection refused")
	_, err = svc.Profile(ctx, id)
	assert.True(t, errors.Is(err, utils.ErrDatabaseError))
}
