package ai

import "errors"

const (
	ChatUnavailableMessage      = "AI assistant is not available at the moment."
	SuggestionsNotConfiguredMsg = "AI model not configured"
	SuggestionsFailedMsg        = "AI suggestions could not be generated"
	BudgetUnavailableMsg        = "Budget analysis unavailable"
	BudgetFailedMsg             = "Unable to analyze budget"
)

// Fallbacks are rebuilt on every call so no caller can mutate a shared value.

func DefaultItinerary() Itinerary {
	placeholderDay := func(day int, theme string, activities ...string) DayPlan {
		plan := DayPlan{Day: day, Theme: theme, Activities: make([]Activity, 0, len(activities))}
		for _, a := range activities {
			plan.Activities = append(plan.Activities, Activity{Activity: a})
		}
		return plan
	}

	return Itinerary{
		Summary:           "AI itinerary generation placeholder",
		Highlights:        []string{},
		BestNeighborhoods: []string{},
		Days: []DayPlan{
			placeholderDay(1, "Arrival", "Arrival", "Explore the local neighborhood", "Sample regional cuisine"),
			placeholderDay(2, "Highlights", "Guided tour of key attractions", "Sunset viewpoint", "Dinner with locals"),
			placeholderDay(3, "Adventure", "Outdoor adventure", "Relaxing spa break", "Cultural evening show"),
		},
		Alternatives: []AlternativePlan{
			{Title: "Rainy-day plan", Activities: []string{"Museum visit", "Cooking class", "Coffee tasting tour"}},
		},
		BudgetBreakdown: map[string]BudgetLine{},
		BudgetTips: []string{
			"Book tickets in advance to secure discounts.",
			"Use public transit cards for unlimited travel.",
		},
	}
}

func DefaultSuggestions(err error) SuggestionsResult {
	msg := SuggestionsFailedMsg
	if errors.Is(err, ErrUnavailable) {
		msg = SuggestionsNotConfiguredMsg
	}
	return SuggestionsResult{Suggestions: []Suggestion{}, Error: msg}
}

func DefaultRecommendations(activityType string) Recommendations {
	return Recommendations{Recommendations: []string{}, Tips: []string{}, ActivityType: activityType}
}

func DefaultPackingList() PackingList {
	return PackingList{Categories: map[string][]string{}, Tips: []string{}}
}

func DefaultBudgetAnalysis(err error) BudgetAnalysis {
	msg := BudgetFailedMsg
	if errors.Is(err, ErrUnavailable) {
		msg = BudgetUnavailableMsg
	}
	return BudgetAnalysis{
		Analysis:        msg,
		Categories:      map[string]float64{},
		MoneySavingTips: []string{},
		Breakdown:       map[string]any{},
	}
}
