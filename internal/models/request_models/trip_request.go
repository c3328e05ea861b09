package request_models

import "encoding/json"

type CreateTripRequest struct {
	Title         string          `json:"title" binding:"required,max=255"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	BudgetCents   *int64          `json:"budgetCents"`
	Location      string          `json:"location" binding:"max=255"`
	Vehicle       string          `json:"vehicle" binding:"max=64"`
	Accessibility json.RawMessage `json:"accessibility"`
}

// ItineraryContext is the optional body of the generate endpoint. Values are
// decoded leniently, so a numeric group_size or a comma separated interests
// string are accepted.
type ItineraryContext struct {
	GroupSize           string   `mapstructure:"group_size"`
	TravelPace          string   `mapstructure:"travel_pace"`
	Interests           []string `mapstructure:"interests"`
	SpecialRequirements []string `mapstructure:"special_requirements"`
}

type JoinTripRequest struct {
	Message string `json:"message" binding:"max=1000"`
}
