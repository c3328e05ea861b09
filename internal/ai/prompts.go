package ai

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// TripDays is end-start+1 when both dates are known, otherwise 1.
func TripDays(tc TripContext) int {
	if tc.StartDate == nil || tc.EndDate == nil {
		return 1
	}
	start := truncateDay(*tc.StartDate)
	end := truncateDay(*tc.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// BudgetUSD converts the minor-unit budget to whole dollars, 0 when unset.
func BudgetUSD(tc TripContext) int64 {
	if tc.BudgetCents == nil {
		return 0
	}
	return *tc.BudgetCents / 100
}

// PerDayBudget splits total over days, keeping the total when days is not positive.
func PerDayBudget(total int64, days int) int64 {
	if days <= 0 {
		return total
	}
	return total / int64(days)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "unspecified"
	}
	return t.Format(dateLayout)
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}

func groupSize(tc TripContext) string {
	if strings.TrimSpace(tc.GroupSize) == "" {
		return DefaultGroup
	}
	return tc.GroupSize
}

func travelPace(tc TripContext) Pace {
	if tc.TravelPace == "" {
		return PaceModerate
	}
	return tc.TravelPace
}

const itinerarySchema = `{
  "summary": "Detailed 2-3 sentence summary of the entire trip",
  "highlights": ["Top 5 must-see attractions"],
  "best_neighborhoods": ["neighborhood 1", "neighborhood 2"],
  "days": [
    {
      "day": 1,
      "theme": "Arrival & Exploration",
      "activities": [
        {"time": "09:00-12:00", "activity": "Specific activity", "location": "Specific location", "cost": "$X"},
        {"time": "12:00-14:00", "activity": "Lunch at...", "location": "Restaurant name", "cost": "$X"},
        {"time": "14:00-17:00", "activity": "Afternoon activity", "location": "Specific location", "cost": "$X"},
        {"time": "18:00-20:00", "activity": "Dinner at...", "location": "Restaurant name", "cost": "$X"},
        {"time": "20:00-22:00", "activity": "Evening activity", "location": "Specific location", "cost": "$0"}
      ],
      "daily_budget": "$X",
      "notes": "Practical tips for this day"
    }
  ],
  "alternatives": [
    {
      "title": "Rainy Day Plan",
      "activities": ["Indoor activity 1", "Indoor activity 2", "Indoor activity 3"],
      "reason": "When to use this plan"
    }
  ],
  "budget_breakdown": {
    "accommodation": {"daily": "$X", "total": "$X", "recommendation": "Where to stay"},
    "food": {"daily": "$X", "total": "$X", "tips": ["Budget eating tip 1", "Budget eating tip 2"]},
    "activities": {"daily": "$X", "total": "$X", "tips": ["Activity cost-saving tip 1"]},
    "transport": {"daily": "$X", "total": "$X", "recommendation": "Transit passes, shared rides, etc"}
  },
  "budget_tips": ["Specific, actionable tip 1", "Specific, actionable tip 2", "...(at least 10 tips)"],
  "local_info": {
    "emergency": "Emergency number and what it covers",
    "currency_exchange": "Where to exchange money and typical rates",
    "transportation": "Best ways to get around",
    "safety": "Safety tips and areas to avoid",
    "cultural_tips": "Important customs and etiquette"
  }
}`

// ItineraryPrompt asks for a day-by-day plan in the Itinerary shape.
func ItineraryPrompt(tc TripContext) string {
	days := TripDays(tc)
	budget := BudgetUSD(tc)

	var b strings.Builder
	b.WriteString("You are an expert travel planner who writes accurate, detailed and practical itineraries. ")
	b.WriteString("Build a day-by-day plan that fits the traveler's preferences and constraints.\n\n")

	b.WriteString("TRIP DETAILS:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", tc.Destination)
	fmt.Fprintf(&b, "- Duration: %d days\n", days)
	fmt.Fprintf(&b, "- Group Size: %s\n", groupSize(tc))
	fmt.Fprintf(&b, "- Total Budget: $%d\n", budget)
	fmt.Fprintf(&b, "- Daily Budget: $%d\n", PerDayBudget(budget, days))
	fmt.Fprintf(&b, "- Travel Pace: %s (relaxed=2-3 activities/day, moderate=4-5 activities/day, fast-paced=6+ activities/day)\n", travelPace(tc))
	fmt.Fprintf(&b, "- Interests: %s\n", joinOr(tc.Interests, "general tourism"))
	fmt.Fprintf(&b, "- Special Requirements: %s\n\n", joinOr(tc.SpecialRequirements, "none"))

	b.WriteString("REQUIREMENTS FOR THE JSON RESPONSE:\n")
	b.WriteString("1. A detailed summary of what the trip is about\n")
	fmt.Fprintf(&b, "2. Exactly %d entries in \"days\", numbered from 1, each with morning, afternoon and evening activities, a dining recommendation and estimated costs\n", days)
	b.WriteString("3. 2-3 alternative plans for other preferences or bad weather\n")
	b.WriteString("4. At least 10 money-saving tips specific to the destination and budget tier\n")
	b.WriteString("5. Emergency contacts and important local information\n")
	b.WriteString("6. The best neighborhoods to stay in\n")
	b.WriteString("7. Transport recommendations between attractions\n\n")

	b.WriteString("RETURN ONLY a valid JSON object with this EXACT structure:\n")
	b.WriteString(itinerarySchema)
	b.WriteString("\n\nIMPORTANT:\n")
	b.WriteString("- Activities must be specific to the destination, not generic\n")
	b.WriteString("- Use real neighborhood names and restaurant types\n")
	b.WriteString("- Costs must be realistic for the destination and budget\n")
	b.WriteString("- Respect the travel pace\n")
	b.WriteString("- Reflect the interests and special requirements in every suggestion\n")
	return b.String()
}

var suggestionSlots = []string{
	"Beach/Coastal destination (relaxation focused)",
	"Cultural/Historical destination (museums, heritage sites)",
	"Adventure/Mountain destination (outdoor activities)",
	"Urban/Metropolitan destination (food, nightlife, shopping)",
	"Nature/Wildlife destination (eco-tourism, national parks)",
}

const suggestionSchema = `{
  "destination": "Specific City/Region Name",
  "country": "Country name",
  "title": "Memorable title reflecting the destination",
  "description": "One-line description of what makes it unique",
  "destinationType": "Beach/Cultural/Adventure/Urban/Nature",
  "longDescription": "3-4 sentences on what sets it apart",
  "reasonToVisit": "One specific reason it matches the interests",
  "whySpecialForYou": "4-5 sentences on how it fits the interests and budget",
  "highlights": ["Named highlight 1 with a short explanation", "...(exactly 7 highlights)"],
  "activities": ["Specific activity 1 - description", "...(12-15 activities)"],
  "mustTryActivities": ["Essential experience 1", "...(exactly 5)"],
  "uniqueFeatures": ["What sets it apart from the other suggestions", "...(exactly 4)"],
  "cultureAndHeritage": ["Cultural element 1 with a real example", "...(exactly 5)"],
  "localCuisine": ["Dish name - description and where to eat it", "...(exactly 6)"],
  "socialScene": "Nightlife, entertainment and social atmosphere",
  "climate": "Temperature ranges, humidity, rainfall, best and worst seasons",
  "bestTimeToVisit": "Months or season and why",
  "recommendedDuration": "e.g. 5-7 days",
  "rating": 4.5,
  "matchScore": 85,
  "accommodation": "Budget-appropriate neighborhoods, hotel types and price ranges",
  "transport": "Getting there from the origin and getting around",
  "estimatedBudget": "$X per day",
  "budgetBreakdown": {
    "accommodation": "$X per night",
    "food": "$X per day",
    "activities": "$X per day",
    "transport": "$X per day",
    "total": "$X per day"
  },
  "proTips": ["Insider tip 1", "...(at least 10)"],
  "visaRequirements": "Visa requirements for visitors from the origin",
  "safety": "Safety information and precautions",
  "bestNeighborhoods": ["Neighborhood 1 - description", "..."],
  "seasonalEvents": ["Event 1 with date", "..."],
  "travelTips": ["Practical tip 1", "...(at least 8)"]
}`

// SuggestionsPrompt asks for five destinations of different types reachable from location.
func SuggestionsPrompt(location string, budgetCents *int64, durationDays *int, interests []string) string {
	budgetStr := "flexible budget"
	if budgetCents != nil && *budgetCents/100 > 0 {
		budgetStr = fmt.Sprintf("$%d total", *budgetCents/100)
	}
	durationStr := "flexible duration"
	if durationDays != nil && *durationDays > 0 {
		durationStr = fmt.Sprintf("%d days", *durationDays)
	}
	interestsStr := "Provide diverse destination types"
	if len(interests) > 0 {
		interestsStr = "PRIMARY INTERESTS: " + strings.Join(interests, ", ")
	}

	var b strings.Builder
	b.WriteString("You are an expert travel planner who makes personalized destination recommendations. ")
	fmt.Fprintf(&b, "Create %d COMPLETELY DIFFERENT destination suggestions for a traveler starting FROM %s.\n\n", len(suggestionSlots), location)

	b.WriteString("TRAVELER PROFILE:\n")
	fmt.Fprintf(&b, "- Originating from: %s\n", location)
	fmt.Fprintf(&b, "- Total Budget: %s\n", budgetStr)
	fmt.Fprintf(&b, "- Trip Duration: %s\n", durationStr)
	fmt.Fprintf(&b, "- %s\n\n", interestsStr)

	fmt.Fprintf(&b, "DESTINATION DIVERSITY (each of the %d must be a different type, in this order):\n", len(suggestionSlots))
	for i, slot := range suggestionSlots {
		fmt.Fprintf(&b, "%d. %s\n", i+1, slot)
	}

	b.WriteString("\nINTEREST ALIGNMENT:\n")
	b.WriteString("Tailor every destination, its activities and highlights to the interests provided.\n")
	b.WriteString(interestGuidance(interests))

	fmt.Fprintf(&b, "\nRETURN A VALID JSON ARRAY of exactly %d objects, each with these EXACT fields:\n", len(suggestionSlots))
	b.WriteString(suggestionSchema)
	b.WriteString("\n\nRULES:\n")
	b.WriteString("- Real city names, neighborhoods, restaurants and attractions only\n")
	b.WriteString("- matchScore is a number from 65 to 95 and must differ between destinations\n")
	b.WriteString("- rating is a number from 4.2 to 4.8\n")
	b.WriteString("- Keep every recommendation realistic for the budget\n")
	b.WriteString("- Fill every field with substantial content\n")
	fmt.Fprintf(&b, "Return ONLY the JSON array with exactly %d destination objects. No explanations.", len(suggestionSlots))
	return b.String()
}

// interestGuidance emits one line per slot, cycling through interests.
func interestGuidance(interests []string) string {
	if len(interests) == 0 {
		return ""
	}
	var b strings.Builder
	for i := range suggestionSlots {
		interest := interests[i%len(interests)]
		fmt.Fprintf(&b, "- For travelers interested in %s: emphasize activities that %s enthusiasts enjoy most\n",
			interest, strings.ToLower(interest))
	}
	return b.String()
}

func budgetOrFlexible(tc TripContext) string {
	if tc.BudgetCents == nil {
		return "flexible"
	}
	return fmt.Sprintf("%d", BudgetUSD(tc))
}

// RecommendationsPrompt asks for a ranked list of places of one activity type.
func RecommendationsPrompt(tc TripContext, activityType string) string {
	if activityType == "" {
		activityType = DefaultActivity
	}
	return fmt.Sprintf(
		"You are a travel guide expert. Recommend the top %s for a trip to %s. "+
			"Trip dates: %s to %s. Budget: $%s. "+
			"Give at least 5 recommendations and at least 3 tips. "+
			`Return as JSON with format: {"recommendations": ["place 1", "place 2", "place 3", "place 4", "place 5"], "tips": ["tip 1", "tip 2", "tip 3"]}`,
		activityType, tc.Destination, formatDate(tc.StartDate), formatDate(tc.EndDate), budgetOrFlexible(tc))
}

const chatSystemPrompt = "You are a helpful travel planning assistant. Answer questions about travel, destinations, " +
	"budgeting, packing, visas, and trip logistics. Be concise and helpful."

// ChatPrompt returns the system instruction followed by the user turn.
func ChatPrompt(message string, context map[string]any) []string {
	full := message
	if len(context) > 0 {
		if raw, err := json.Marshal(context); err == nil {
			full = fmt.Sprintf("Context: %s\n\nUser message: %s", raw, message)
		}
	}
	return []string{chatSystemPrompt, full}
}

// PackingListPrompt asks for packing items grouped by category.
func PackingListPrompt(tc TripContext, additional string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed packing list for a %d-day trip to %s from %s to %s. ",
		TripDays(tc), tc.Destination, formatDate(tc.StartDate), formatDate(tc.EndDate))
	if s := strings.TrimSpace(additional); s != "" {
		b.WriteString(s)
		b.WriteString(" ")
	}
	b.WriteString("List at least 5 items in each category and at least 5 tips. ")
	b.WriteString(`Return as JSON with format: {"categories": {"clothing": ["item"], "toiletries": ["item"], "documents": ["item"], "electronics": ["item"]}, "tips": ["tip 1", "tip 2"]}`)
	return b.String()
}

// BudgetPrompt asks for a spending plan for the trip budget.
func BudgetPrompt(tc TripContext) string {
	days := TripDays(tc)
	budget := BudgetUSD(tc)
	return fmt.Sprintf(
		"Analyze and provide a budget breakdown for a %d-day trip to %s with a total budget of $%d "+
			"(about $%d per day). Suggest spending for accommodation, food, activities, transport and other costs. "+
			"Use plain numbers in US dollars, give a one-paragraph analysis and at least 5 money saving tips. "+
			`Return as JSON with format: {"analysis": "text", "daily_budget": 100, "categories": {"accommodation": 40, "food": 30, "activities": 20, "transport": 10}, "money_saving_tips": ["tip 1", "tip 2"]}`,
		days, tc.Destination, budget, PerDayBudget(budget, days))
}
