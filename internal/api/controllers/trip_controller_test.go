package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/pkg/utils"
)

type stubTripService struct {
	created request_models.CreateTripRequest
	err     error
}

func (s *stubTripService) CreateTrip(_ context.Context, _ uuid.UUID, req request_models.CreateTripRequest) (response_models.TripResponse, error) {
	s.created = req
	return response_models.TripResponse{Title: req.Title}, s.err
}

func (s *stubTripService) GetTrip(_ context.Context, id uuid.UUID) (response_models.TripResponse, error) {
	return response_models.TripResponse{ID: id.String()}, s.err
}

func (s *stubTripService) Discover(context.Context) ([]response_models.TripResponse, error) {
	return []response_models.TripResponse{}, s.err
}

type stubCarpoolService struct {
	err error
}

func (s *stubCarpoolService) ListCarpools(context.Context, uuid.UUID) ([]response_models.CarpoolResponse, error) {
	return []response_models.CarpoolResponse{}, s.err
}

func (s *stubCarpoolService) CreateCarpool(_ context.Context, tripID, host uuid.UUID, req request_models.CreateCarpoolRequest) (response_models.CarpoolResponse, error) {
	return response_models.CarpoolResponse{Trip: tripID.String(), Host: host.String(), From: req.FromLocation()}, s.err
}

func newTripRouter(trips *stubTripService, carpools *stubCarpoolService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.NewString())
		c.Next()
	})
	tc := NewTripController(trips)
	cc := NewCarpoolController(carpools)
	r.POST("/trips", tc.CreateTrip)
	r.GET("/trips/discover", tc.Discover)
	r.GET("/trips/:id", tc.GetTrip)
	r.GET("/trips/:id/carpools", cc.ListCarpools)
	r.POST("/trips/:id/carpools", cc.CreateCarpool)
	return r
}

func TestTripController_Create(t *testing.T) {
	trips := &stubTripService{}
	r := newTripRouter(trips, &stubCarpoolService{})

	w := do(r, http.MethodPost, "/trips", `{"location": "Oslo"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "title is required")

	w = do(r, http.MethodPost, "/trips", `{"title": "Fjords", "budgetCents": 120000}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(120000), *trips.created.BudgetCents)
	trip, ok := decodeData(t, w)["trip"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Fjords", trip["title"])

	trips.err = utils.ErrInvalidDateRange
	w = do(r, http.MethodPost, "/trips", `{"title": "Fjords"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "End date is before start date")
}

func TestTripController_GetAndDiscover(t *testing.T) {
	trips := &stubTripService{}
	r := newTripRouter(trips, &stubCarpoolService{})

	w := do(r, http.MethodGet, "/trips/discover", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decodeData(t, w)["items"])

	w = do(r, http.MethodGet, "/trips/123", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	trips.err = utils.ErrTripNotFound
	w = do(r, http.MethodGet, "/trips/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCarpoolController(t *testing.T) {
	carpools := &stubCarpoolService{}
	r := newTripRouter(&stubTripService{}, carpools)
	path := "/trips/" + uuid.NewString() + "/carpools"

	w := do(r, http.MethodPost, path, `{"start": "Bergen", "to": "Oslo", "departure": "2024-06-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	carpool, ok := decodeData(t, w)["carpool"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bergen", carpool["from"])

	carpools.err = utils.ErrCarpoolFields
	w = do(r, http.MethodPost, path, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "from, to, and departure are required")

	carpools.err = nil
	w = do(r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decodeData(t, w)["items"])
}
