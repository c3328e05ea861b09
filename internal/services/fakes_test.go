package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"voyage/internal/ai"
	"voyage/internal/models/db_models"
	"voyage/internal/repositories"
)

type fakeAccounts struct {
	byID      map[uuid.UUID]*db_models.Account
	insertErr error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byID: map[uuid.UUID]*db_models.Account{}}
}

func (f *fakeAccounts) Insert(_ context.Context, a *db_models.Account) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, existing := range f.byID {
		if existing.Email == a.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAccounts) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	return f.byID[id], nil
}

func (f *fakeAccounts) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, a := range f.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

type fakeBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: map[string]time.Duration{}}
}

func (f *fakeBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[jti] = ttl
	return nil
}

func (f *fakeBlacklist) RevokeOnce(_ context.Context, jti string, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.revoked[jti]; ok {
		return false, nil
	}
	f.revoked[jti] = ttl
	return true, nil
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.revoked[jti]
	return ok, nil
}

type fakeTrips struct {
	byID      map[uuid.UUID]*db_models.Trip
	findErr   error
	updateErr error
	countErr  error
}

func newFakeTrips(trips ...*db_models.Trip) *fakeTrips {
	f := &fakeTrips{byID: map[uuid.UUID]*db_models.Trip{}}
	for _, t := range trips {
		f.byID[t.ID] = t
	}
	return f
}

func (f *fakeTrips) Create(_ context.Context, t *db_models.Trip) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now().Unix()
	t.UpdatedAt = t.CreatedAt
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTrips) FindByID(_ context.Context, id uuid.UUID) (*db_models.Trip, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTrips) ListLatest(_ context.Context, limit int) ([]db_models.Trip, error) {
	out := make([]db_models.Trip, 0, len(f.byID))
	for _, t := range f.byID {
		if len(out) == limit {
			break
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTrips) CountByOwner(_ context.Context, ownerID uuid.UUID) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, t := range f.byID {
		if t.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeTrips) UpdateItinerary(_ context.Context, id uuid.UUID, itinerary datatypes.JSON) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	t, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Itinerary = itinerary
	return nil
}

type fakeCarpools struct {
	created []db_models.Carpool
}

func (f *fakeCarpools) ListByTrip(_ context.Context, tripID uuid.UUID) ([]db_models.Carpool, error) {
	var out []db_models.Carpool
	for _, c := range f.created {
		if c.TripID == tripID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCarpools) Create(_ context.Context, c *db_models.Carpool) error {
	c.ID = uuid.New()
	f.created = append(f.created, *c)
	return nil
}

type fakeRequests struct {
	byID map[uuid.UUID]*db_models.TripRequest
}

func newFakeRequests() *fakeRequests {
	return &fakeRequests{byID: map[uuid.UUID]*db_models.TripRequest{}}
}

func (f *fakeRequests) CreatePending(_ context.Context, req *db_models.TripRequest) error {
	for _, r := range f.byID {
		if r.TripID == req.TripID && r.RequesterID == req.RequesterID && r.Status == db_models.RequestPending {
			return repositories.ErrPendingExists
		}
	}
	req.ID = uuid.New()
	req.Status = db_models.RequestPending
	cp := *req
	f.byID[req.ID] = &cp
	return nil
}

func (f *fakeRequests) ListByTrip(_ context.Context, tripID uuid.UUID) ([]db_models.TripRequest, error) {
	var out []db_models.TripRequest
	for _, r := range f.byID {
		if r.TripID == tripID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRequests) FindByID(_ context.Context, id uuid.UUID) (*db_models.TripRequest, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequests) UpdateStatus(_ context.Context, id uuid.UUID, from, to string) (bool, error) {
	r, ok := f.byID[id]
	if !ok || r.Status != from {
		return false, nil
	}
	r.Status = to
	return true, nil
}

// recordingPlanner captures the inputs the service hands to the AI layer.
type recordingPlanner struct {
	tc          ai.TripContext
	chatContext map[string]any
	activity    string
	additional  string
	suggestArgs []any
}

func (r *recordingPlanner) GenerateItinerary(_ context.Context, tc ai.TripContext) ai.Itinerary {
	r.tc = tc
	return ai.DefaultItinerary()
}

func (r *recordingPlanner) GenerateSuggestions(_ context.Context, location string, budgetCents *int64, durationDays *int, interests []string) ai.SuggestionsResult {
	r.suggestArgs = []any{location, budgetCents, durationDays, interests}
	return ai.DefaultSuggestions(ai.ErrUnavailable)
}

func (r *recordingPlanner) GenerateRecommendations(_ context.Context, tc ai.TripContext, activityType string) ai.Recommendations {
	r.tc = tc
	r.activity = activityType
	return ai.DefaultRecommendations(activityType)
}

func (r *recordingPlanner) Chat(_ context.Context, _ string, chatContext map[string]any) string {
	r.chatContext = chatContext
	return ai.ChatUnavailableMessage
}

func (r *recordingPlanner) GeneratePackingList(_ context.Context, tc ai.TripContext, additional string) ai.PackingList {
	r.tc = tc
	r.additional = additional
	return ai.DefaultPackingList()
}

func (r *recordingPlanner) AnalyzeBudget(_ context.Context, tc ai.TripContext) ai.BudgetAnalysis {
	r.tc = tc
	return ai.DefaultBudgetAnalysis(ai.ErrUnavailable)
}
