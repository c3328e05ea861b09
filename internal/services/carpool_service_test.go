package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voyage/internal/models/request_models"
	"voyage/pkg/utils"
)

func seats(n int) *int { return &n }

func TestCarpoolService_Create(t *testing.T) {
	trip := sampleTrip(uuid.New())
	carpools := &fakeCarpools{}
	svc := NewCarpoolService(carpools, newFakeTrips(trip), zap.NewNop())
	host := uuid.New()

	created, err := svc.CreateCarpool(context.Background(), trip.ID, host, request_models.CreateCarpoolRequest{
		Start:       "Milan",
		Destination: "Rome",
		Departure:   "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Seats)
	assert.Equal(t, "Milan", created.From)
	assert.Equal(t, "Rome", created.To)
	assert.Equal(t, "2024-03-01T00:00:00Z", created.Departure)
	assert.Equal(t, host.String(), created.Host)

	list, err := svc.ListCarpools(context.Background(), trip.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCarpoolService_Validation(t *testing.T) {
	trip := sampleTrip(uuid.New())
	svc := NewCarpoolService(&fakeCarpools{}, newFakeTrips(trip), zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		name string
		req  request_models.CreateCarpoolRequest
		want error
	}{
		{"missing to", request_models.CreateCarpoolRequest{From: "A", Departure: "2024-03-01"}, utils.ErrCarpoolFields},
		{"missing departure", request_models.CreateCarpoolRequest{From: "A", To: "B"}, utils.ErrCarpoolFields},
		{"bad departure", request_models.CreateCarpoolRequest{From: "A", To: "B", Departure: "tomorrow"}, utils.ErrInvalidDeparture},
		{"zero seats", request_models.CreateCarpoolRequest{From: "A", To: "B", Departure: "2024-03-01T08:30", Seats: seats(0)}, utils.ErrInvalidSeats},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateCarpool(ctx, trip.ID, uuid.New(), tc.req)
			assert.True(t, errors.Is(err, tc.want), err)
		})
	}

	_, err := svc.CreateCarpool(ctx, uuid.New(), uuid.New(), request_models.CreateCarpoolRequest{From: "A", To: "B", Departure: "2024-03-01"})
	assert.True(t, errors.Is(err, utils.ErrTripNotFound))
}
