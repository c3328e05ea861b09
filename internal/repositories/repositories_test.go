package repositories

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"voyage/internal/infra"
	"voyage/internal/models/db_models"
)

// openTestDB connects to POSTGRES_TEST_URL and skips when it is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("POSTGRES_TEST_URL")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}
	db, err := infra.InitPostgresql(dsn, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	t.Cleanup(func() { infra.ClosePostgresql(db, zap.NewNop()) })
	return db
}

func seedAccount(t *testing.T, repo AccountRepository) *db_models.Account {
	t.Helper()
	account := &db_models.Account{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Role:         db_models.RoleUser,
	}
	require.NoError(t, repo.Insert(context.Background(), account))
	return account
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := seedAccount(t, repo)
	dup := &db_models.Account{Email: account.Email, PasswordHash: "y"}
	assert.True(t, errors.Is(repo.Insert(ctx, dup), gorm.ErrDuplicatedKey))

	found, err := repo.FindByEmail(ctx, account.Email)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, account.ID, found.ID)

	missing, err := repo.FindById(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTripRepository_ItineraryAndCarpools(t *testing.T) {
	db := openTestDB(t)
	owner := seedAccount(t, NewAccountRepository(db))
	trips := NewTripRepository(db)
	carpools := NewCarpoolRepository(db)
	ctx := context.Background()

	trip := &db_models.Trip{OwnerID: owner.ID, Title: "Test trip", Location: "Bergen"}
	require.NoError(t, trips.Create(ctx, trip))
	require.NoError(t, trips.UpdateItinerary(ctx, trip.ID, datatypes.JSON(`{"summary":"ok"}`)))

	found, err := trips.FindByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.Owner.ID)
	assert.JSONEq(t, `{"summary":"ok"}`, string(found.Itinerary))

	assert.ErrorIs(t, trips.UpdateItinerary(ctx, uuid.New(), nil), gorm.ErrRecordNotFound)

	count, err := trips.CountByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	none, err := trips.CountByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, none)

	later := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	earlier := later.Add(-24 * time.Hour)
	for _, dep := range []time.Time{later, earlier} {
		require.NoError(t, carpools.Create(ctx, &db_models.Carpool{
			TripID: trip.ID, HostID: owner.ID, Seats: 2, FromLocation: "A", ToLocation: "B", Departure: dep,
		}))
	}
	list, err := carpools.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Departure.Equal(earlier))
}

func TestTripRequestRepository_PendingUniqueness(t *testing.T) {
	db := openTestDB(t)
	accounts := NewAccountRepository(db)
	owner, guest := seedAccount(t, accounts), seedAccount(t, accounts)
	trips := NewTripRepository(db)
	requests := NewTripRequestRepository(db)
	ctx := context.Background()

	trip := &db_models.Trip{OwnerID: owner.ID, Title: "Shared"}
	require.NoError(t, trips.Create(ctx, trip))

	first := &db_models.TripRequest{TripID: trip.ID, RequesterID: guest.ID}
	require.NoError(t, requests.CreatePending(ctx, first))
	assert.ErrorIs(t, requests.CreatePending(ctx, &db_models.TripRequest{TripID: trip.ID, RequesterID: guest.ID}), ErrPendingExists)

	ok, err := requests.UpdateStatus(ctx, first.ID, db_models.RequestPending, db_models.RequestAccepted)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = requests.UpdateStatus(ctx, first.ID, db_models.RequestPending, db_models.RequestRejected)
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := requests.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, guest.ID, list[0].Requester.ID)
}
