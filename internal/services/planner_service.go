package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"voyage/internal/ai"
	"voyage/internal/models/db_models"
	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/internal/repositories"
	"voyage/pkg/utils"
)

// TripPlanner is the AI surface the service depends on; *ai.Planner
// satisfies it.
type TripPlanner interface {
	GenerateItinerary(ctx context.Context, tc ai.TripContext) ai.Itinerary
	GenerateSuggestions(ctx context.Context, location string, budgetCents *int64, durationDays *int, interests []string) ai.SuggestionsResult
	GenerateRecommendations(ctx context.Context, tc ai.TripContext, activityType string) ai.Recommendations
	Chat(ctx context.Context, message string, chatContext map[string]any) string
	GeneratePackingList(ctx context.Context, tc ai.TripContext, additional string) ai.PackingList
	AnalyzeBudget(ctx context.Context, tc ai.TripContext) ai.BudgetAnalysis
}

type SuggestionsInput struct {
	Location     string
	BudgetCents  *int64
	DurationDays *int
	Interests    []string
}

type PlannerServiceInterface interface {
	GenerateItinerary(ctx context.Context, tripID, callerID uuid.UUID, extra map[string]any) (response_models.TripResponse, error)
	Recommendations(ctx context.Context, tripID uuid.UUID, activityType string) (ai.Recommendations, error)
	PackingList(ctx context.Context, tripID uuid.UUID, additional string) (ai.PackingList, error)
	BudgetAnalysis(ctx context.Context, tripID uuid.UUID) (ai.BudgetAnalysis, error)
	Suggestions(ctx context.Context, input SuggestionsInput) ai.SuggestionsResult
	Chat(ctx context.Context, callerID uuid.UUID, request request_models.ChatRequest) string
}

type PlannerService struct {
	planner  TripPlanner
	tripRepo repositories.ITripRepository
	log      *zap.Logger
}

func NewPlannerService(planner TripPlanner, tripRepo repositories.ITripRepository, log *zap.Logger) PlannerServiceInterface {
	return &PlannerService{
		planner:  planner,
		tripRepo: tripRepo,
		log:      log.Named("planner"),
	}
}

func (p *PlannerService) GenerateItinerary(ctx context.Context, tripID, callerID uuid.UUID, extra map[string]any) (response_models.TripResponse, error) {
	trip, err := p.findTrip(ctx, tripID)
	if err != nil {
		return response_models.TripResponse{}, err
	}
	if trip.OwnerID != callerID {
		return response_models.TripResponse{}, utils.ErrNotTripOwner
	}

	tc := tripContext(*trip)
	itineraryContext, err := decodeItineraryContext(extra)
	if err != nil {
		p.log.Warn("ignoring malformed itinerary context", zap.String("trip_id", tripID.String()), zap.Error(err))
	}
	applyItineraryContext(&tc, itineraryContext)

	itinerary := p.planner.GenerateItinerary(ctx, tc)
	encoded, err := json.Marshal(itinerary)
	if err != nil {
		return response_models.TripResponse{}, err
	}

	if err := p.tripRepo.UpdateItinerary(ctx, trip.ID, datatypes.JSON(encoded)); err != nil {
		p.log.Error("storing itinerary", zap.String("trip_id", tripID.String()), zap.Error(err))
		return response_models.TripResponse{}, utils.ErrDatabaseError
	}
	trip.Itinerary = datatypes.JSON(encoded)

	return response_models.NewTripResponse(*trip), nil
}

func (p *PlannerService) Recommendations(ctx context.Context, tripID uuid.UUID, activityType string) (ai.Recommendations, error) {
	trip, err := p.findTrip(ctx, tripID)
	if err != nil {
		return ai.Recommendations{}, err
	}
	if strings.TrimSpace(activityType) == "" {
		activityType = ai.DefaultActivity
	}
	return p.planner.GenerateRecommendations(ctx, tripContext(*trip), activityType), nil
}

func (p *PlannerService) PackingList(ctx context.Context, tripID uuid.UUID, additional string) (ai.PackingList, error) {
	trip, err := p.findTrip(ctx, tripID)
	if err != nil {
		return ai.PackingList{}, err
	}
	return p.planner.GeneratePackingList(ctx, tripContext(*trip), additional), nil
}

func (p *PlannerService) BudgetAnalysis(ctx context.Context, tripID uuid.UUID) (ai.BudgetAnalysis, error) {
	trip, err := p.findTrip(ctx, tripID)
	if err != nil {
		return ai.BudgetAnalysis{}, err
	}
	return p.planner.AnalyzeBudget(ctx, tripContext(*trip)), nil
}

func (p *PlannerService) Suggestions(ctx context.Context, input SuggestionsInput) ai.SuggestionsResult {
	return p.planner.GenerateSuggestions(ctx, input.Location, input.BudgetCents, input.DurationDays, input.Interests)
}

// Chat adds the caller's trip to the context when trip_id names a trip they
// own. Unknown or foreign trips are ignored.
func (p *PlannerService) Chat(ctx context.Context, callerID uuid.UUID, request request_models.ChatRequest) string {
	chatContext := make(map[string]any, len(request.Context)+1)
	for k, v := range request.Context {
		chatContext[k] = v
	}

	if tripID, err := uuid.Parse(strings.TrimSpace(request.TripID)); err == nil {
		trip, err := p.tripRepo.FindByID(ctx, tripID)
		if err != nil {
			p.log.Warn("loading chat trip", zap.String("trip_id", tripID.String()), zap.Error(err))
		} else if trip != nil && trip.OwnerID == callerID {
			chatContext["trip"] = map[string]any{
				"title":    trip.Title,
				"location": trip.Location,
				"dates":    dateRange(*trip),
				"budget":   trip.BudgetCents,
			}
		}
	}

	if len(chatContext) == 0 {
		chatContext = nil
	}
	return p.planner.Chat(ctx, request.Message, chatContext)
}

func (p *PlannerService) findTrip(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	trip, err := p.tripRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func tripContext(trip db_models.Trip) ai.TripContext {
	return ai.TripContext{
		Destination: trip.Location,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		BudgetCents: trip.BudgetCents,
		GroupSize:   ai.DefaultGroup,
		TravelPace:  ai.PaceModerate,
	}
}

func decodeItineraryContext(extra map[string]any) (request_models.ItineraryContext, error) {
	var out request_models.ItineraryContext
	if len(extra) == 0 {
		return out, nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return out, err
	}
	err = decoder.Decode(extra)
	return out, err
}

func applyItineraryContext(tc *ai.TripContext, extra request_models.ItineraryContext) {
	if g := strings.TrimSpace(extra.GroupSize); g != "" {
		tc.GroupSize = g
	}
	if extra.TravelPace != "" {
		tc.TravelPace = ai.ParsePace(extra.TravelPace)
	}
	tc.Interests = splitList(extra.Interests)
	tc.SpecialRequirements = splitList(extra.SpecialRequirements)
}

// splitList flattens comma separated entries and drops blanks.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func dateRange(trip db_models.Trip) string {
	return dateOrNone(utils.FormatDate(trip.StartDate)) + " to " + dateOrNone(utils.FormatDate(trip.EndDate))
}

func dateOrNone(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}
