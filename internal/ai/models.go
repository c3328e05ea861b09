package ai

import (
	"strings"
	"time"
)

type Pace string

const (
	PaceRelaxed   Pace = "relaxed"
	PaceModerate  Pace = "moderate"
	PaceFastPaced Pace = "fast-paced"
)

const (
	DefaultGroup    = "solo"
	DefaultActivity = "attractions"
)

// ParsePace maps free-form input onto a known pace, defaulting to moderate.
func ParsePace(s string) Pace {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relaxed", "slow":
		return PaceRelaxed
	case "fast-paced", "fast", "fast paced", "packed":
		return PaceFastPaced
	default:
		return PaceModerate
	}
}

// TripContext is the read-only input to every prompt builder.
type TripContext struct {
	Destination         string
	StartDate           *time.Time
	EndDate             *time.Time
	BudgetCents         *int64
	GroupSize           string
	TravelPace          Pace
	Interests           []string
	SpecialRequirements []string
}

type Activity struct {
	Time     string `json:"time" mapstructure:"time"`
	Activity string `json:"activity" mapstructure:"activity"`
	Location string `json:"location" mapstructure:"location"`
	Cost     string `json:"cost" mapstructure:"cost"`
}

type DayPlan struct {
	Day         int        `json:"day" mapstructure:"day"`
	Theme       string     `json:"theme" mapstructure:"theme"`
	Activities  []Activity `json:"activities" mapstructure:"activities"`
	DailyBudget string     `json:"daily_budget" mapstructure:"daily_budget"`
	Notes       string     `json:"notes" mapstructure:"notes"`
}

type AlternativePlan struct {
	Title      string   `json:"title" mapstructure:"title"`
	Activities []string `json:"activities" mapstructure:"activities"`
	Reason     string   `json:"reason" mapstructure:"reason"`
}

type BudgetLine struct {
	Daily          string   `json:"daily" mapstructure:"daily"`
	Total          string   `json:"total" mapstructure:"total"`
	Tips           []string `json:"tips" mapstructure:"tips"`
	Recommendation string   `json:"recommendation" mapstructure:"recommendation"`
}

type LocalInfo struct {
	Emergency        string `json:"emergency" mapstructure:"emergency"`
	CurrencyExchange string `json:"currency_exchange" mapstructure:"currency_exchange"`
	Transportation   string `json:"transportation" mapstructure:"transportation"`
	Safety           string `json:"safety" mapstructure:"safety"`
	CulturalTips     string `json:"cultural_tips" mapstructure:"cultural_tips"`
}

type Itinerary struct {
	Summary           string                `json:"summary" mapstructure:"summary"`
	Highlights        []string              `json:"highlights" mapstructure:"highlights"`
	BestNeighborhoods []string              `json:"best_neighborhoods" mapstructure:"best_neighborhoods"`
	Days              []DayPlan             `json:"days" mapstructure:"days"`
	Alternatives      []AlternativePlan     `json:"alternatives" mapstructure:"alternatives"`
	BudgetBreakdown   map[string]BudgetLine `json:"budget_breakdown" mapstructure:"budget_breakdown"`
	BudgetTips        []string              `json:"budget_tips" mapstructure:"budget_tips"`
	LocalInfo         LocalInfo             `json:"local_info" mapstructure:"local_info"`
}

// Suggestion is one normalized destination; its keys come from suggestionFields.
type Suggestion map[string]any

type SuggestionsResult struct {
	Suggestions []Suggestion `json:"suggestions"`
	Error       string       `json:"error,omitempty"`
}

type Recommendations struct {
	Recommendations []string `json:"recommendations"`
	Tips            []string `json:"tips"`
	ActivityType    string   `json:"activity_type"`
}

type PackingList struct {
	Categories map[string][]string `json:"categories"`
	Tips       []string            `json:"tips"`
}

type BudgetAnalysis struct {
	Analysis        string             `json:"analysis"`
	DailyBudget     float64            `json:"daily_budget"`
	Categories      map[string]float64 `json:"categories"`
	MoneySavingTips []string           `json:"money_saving_tips"`
	Breakdown       map[string]any     `json:"breakdown"`
}
