package ai

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestNormalizeSuggestions_FillsEveryField(t *testing.T) {
	raw := parse(t, `[
		{"destination": "Goa", "matchScore": 91},
		{"destination": "Hampi", "highlights": ["Virupaksha Temple"]},
		{"country": "Nepal"},
		{"title": "City Lights", "rating": "4.6"},
		{}
	]`)

	out, err := NormalizeSuggestions(raw)
	require.NoError(t, err)
	require.Len(t, out, 5)

	for i, s := range out {
		assert.Len(t, s, len(suggestionFields), "item %d", i)
		for _, f := range suggestionFields {
			assert.Contains(t, s, f.Name, "item %d", i)
		}
	}

	assert.Equal(t, "Goa", out[0]["title"])
	assert.Equal(t, float64(91), out[0]["matchScore"])
	assert.Equal(t, float64(0), out[0]["rating"])
	assert.Equal(t, "", out[0]["country"])
	assert.Equal(t, []string{}, out[0]["highlights"])
	assert.Equal(t, map[string]any{}, out[0]["budgetBreakdown"])

	assert.Equal(t, []string{"Virupaksha Temple"}, out[1]["highlights"])
	assert.Equal(t, "", out[2]["destination"])
	assert.Equal(t, 4.6, out[3]["rating"])
	assert.Equal(t, "", out[4]["title"])
}

func TestNormalizeSuggestions_Idempotent(t *testing.T) {
	raw := parse(t, `{"suggestions": [{
		"destination": "Kyoto",
		"country": "Japan",
		"longDescription": "Old capital.",
		"cultureAndHeritage": ["Gion", "Fushimi Inari", "Kinkaku-ji", "Nijo Castle"],
		"localCuisine": ["Kaiseki - multi-course dinner", "Yudofu - tofu hot pot", "Matcha sweets"],
		"budgetBreakdown": {"food": "$40 per day"},
		"matchScore": "88%",
		"seasonalEvents": "Gion Matsuri in July"
	}]}`)

	first, err := NormalizeSuggestions(raw)
	require.NoError(t, err)
	require.Len(t, first, 1)

	s := first[0]
	assert.Equal(t, "Kyoto", s["title"])
	assert.Equal(t, "Old capital.", s["description"])
	assert.Equal(t, "Gion | Fushimi Inari | Kinkaku-ji", s["culture"])
	assert.Equal(t, "Kaiseki | Yudofu | Matcha sweets", s["cuisine"])
	assert.Equal(t, float64(88), s["matchScore"])
	assert.Equal(t, []string{"Gion Matsuri in July"}, s["seasonalEvents"])

	second, err := NormalizeSuggestions([]any{map[string]any(s)})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Also stable through a JSON round trip.
	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	third, err := NormalizeSuggestions(parse(t, string(encoded)))
	require.NoError(t, err)
	reencoded, err := json.Marshal(third)
	require.NoError(t, err)
	assert.JSONEq(t, string(encoded), string(reencoded))
}

func TestNormalizeSuggestions_Shapes(t *testing.T) {
	single, err := NormalizeSuggestions(parse(t, `{"destination": "Bali"}`))
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "Bali", single[0]["destination"])

	mixed, err := NormalizeSuggestions(parse(t, `[{"destination": "Bali"}, "junk", 3]`))
	require.NoError(t, err)
	assert.Len(t, mixed, 1)

	empty, err := NormalizeSuggestions(parse(t, `[]`))
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, raw := range []string{`"text"`, `42`, `{"suggestions": "none"}`} {
		_, err := NormalizeSuggestions(parse(t, raw))
		assert.True(t, errors.Is(err, ErrShape), raw)
	}
}

func TestNormalizeSuggestion_ListOfObjects(t *testing.T) {
	out := normalizeSuggestion(map[string]any{
		"highlights": []any{
			map[string]any{"name": "Old Town", "description": "cobbled lanes"},
			map[string]any{"title": "Harbor"},
			map[string]any{"unrelated": true},
			7.0,
		},
	})
	assert.Equal(t, []string{"Old Town - cobbled lanes", "Harbor", "7"}, out["highlights"])
}

func TestNormalizeItinerary(t *testing.T) {
	raw := parse(t, `{
		"summary": "Three days in Porto",
		"days": [
			{"day": 1, "theme": "Ribeira", "activities": [
				{"time": "09:00-12:00", "activity": "Walk", "location": "Ribeira", "cost": 0},
				"Port tasting"
			], "daily_budget": 80, "notes": ["Wear good shoes", "Carry cash"]},
			{"day": "2", "activities": []}
		],
		"budget_breakdown": {
			"transport": {"daily": "$10", "total": "$30", "recommendations": ["Andante card", "Walk"]},
			"food": {"daily": "$25", "total": "$75", "tips": "Eat the prato do dia"}
		},
		"local_info": {"emergency": "112", "cultural_tips": ["Greet shopkeepers"]}
	}`)

	it, err := NormalizeItinerary(raw)
	require.NoError(t, err)

	assert.Equal(t, "Three days in Porto", it.Summary)
	require.Len(t, it.Days, 2)
	assert.Equal(t, 1, it.Days[0].Day)
	assert.Equal(t, Activity{Time: "09:00-12:00", Activity: "Walk", Location: "Ribeira", Cost: "0"}, it.Days[0].Activities[0])
	assert.Equal(t, Activity{Activity: "Port tasting"}, it.Days[0].Activities[1])
	assert.Equal(t, "80", it.Days[0].DailyBudget)
	assert.Equal(t, "Wear good shoes; Carry cash", it.Days[0].Notes)
	assert.Equal(t, 2, it.Days[1].Day)
	assert.Equal(t, []Activity{}, it.Days[1].Activities)

	assert.Equal(t, "Andante card, Walk", it.BudgetBreakdown["transport"].Recommendation)
	assert.Equal(t, []string{}, it.BudgetBreakdown["transport"].Tips)
	assert.Equal(t, []string{"Eat the prato do dia"}, it.BudgetBreakdown["food"].Tips)
	assert.Equal(t, "112", it.LocalInfo.Emergency)
	assert.Equal(t, "Greet shopkeepers", it.LocalInfo.CulturalTips)

	assert.NotNil(t, it.Highlights)
	assert.NotNil(t, it.Alternatives)
	assert.NotNil(t, it.BudgetTips)
}

func TestNormalizeItinerary_SummaryOnly(t *testing.T) {
	it, err := NormalizeItinerary(parse(t, `{"summary": "Short"}`))
	require.NoError(t, err)
	assert.Equal(t, "Short", it.Summary)
	assert.Equal(t, []DayPlan{}, it.Days)
	assert.Equal(t, map[string]BudgetLine{}, it.BudgetBreakdown)
}

func TestNormalizeItinerary_ShapeErrors(t *testing.T) {
	for _, raw := range []string{
		`[]`,
		`{"highlights": ["x"]}`,
		`{"summary": null, "days": null}`,
		`"summary"`,
	} {
		_, err := NormalizeItinerary(parse(t, raw))
		assert.True(t, errors.Is(err, ErrShape), raw)
	}
}

func TestNormalizeItinerary_TypeDrift(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, it Itinerary)
	}{
		{
			name: "emergency as object",
			raw:  `{"summary": "Trip", "local_info": {"emergency": {"police": "112", "ambulance": 108}, "safety": "Safe"}}`,
			check: func(t *testing.T, it Itinerary) {
				assert.Equal(t, "ambulance: 108; police: 112", it.LocalInfo.Emergency)
				assert.Equal(t, "Safe", it.LocalInfo.Safety)
			},
		},
		{
			name: "alternative activities as objects",
			raw: `{"summary": "Trip", "alternatives": [{"title": "Rainy day", "activities": [
				{"activity": "Museum", "time": "10:00"},
				{"name": "Cafe", "description": "slow lunch"},
				"Cinema"
			]}]}`,
			check: func(t *testing.T, it Itinerary) {
				require.Len(t, it.Alternatives, 1)
				assert.Equal(t, "Rainy day", it.Alternatives[0].Title)
				assert.Equal(t, []string{"Museum", "Cafe - slow lunch", "Cinema"}, it.Alternatives[0].Activities)
			},
		},
		{
			name: "day labels",
			raw:  `{"summary": "Trip", "days": [{"day": "Day 1"}, {"day": "Arrival"}, {"day": "Day 3: Hills"}, {}]}`,
			check: func(t *testing.T, it Itinerary) {
				require.Len(t, it.Days, 4)
				for i, d := range it.Days {
					assert.Equal(t, i+1, d.Day)
					assert.Equal(t, []Activity{}, d.Activities)
				}
			},
		},
		{
			name: "daily budget as object",
			raw:  `{"days": [{"day": 1, "daily_budget": {"food": 20, "stay": "$50"}}]}`,
			check: func(t *testing.T, it Itinerary) {
				require.Len(t, it.Days, 1)
				assert.Equal(t, "food: 20; stay: $50", it.Days[0].DailyBudget)
			},
		},
		{
			name: "unrepairable field is zeroed",
			raw:  `{"summary": "Trip", "highlights": ["Beach"], "local_info": "call 112"}`,
			check: func(t *testing.T, it Itinerary) {
				assert.Equal(t, "Trip", it.Summary)
				assert.Equal(t, []string{"Beach"}, it.Highlights)
				assert.Equal(t, LocalInfo{}, it.LocalInfo)
			},
		},
		{
			name: "days not a list",
			raw:  `{"days": "tomorrow"}`,
			check: func(t *testing.T, it Itinerary) {
				assert.Equal(t, []DayPlan{}, it.Days)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := NormalizeItinerary(parse(t, tt.raw))
			require.NoError(t, err)
			tt.check(t, it)
		})
	}
}

func TestNormalizeRecommendations(t *testing.T) {
	recs, err := NormalizeRecommendations(parse(t, `{"recommendations": ["Colosseum", {"name": "Pantheon"}]}`), "attractions")
	require.NoError(t, err)
	assert.Equal(t, Recommendations{
		Recommendations: []string{"Colosseum", "Pantheon"},
		Tips:            []string{},
		ActivityType:    "attractions",
	}, recs)

	_, err = NormalizeRecommendations(parse(t, `{"places": []}`), "attractions")
	assert.True(t, errors.Is(err, ErrShape))
}

func TestNormalizePackingList(t *testing.T) {
	list, err := NormalizePackingList(parse(t, `{"categories": {"clothing": ["Jacket", "Boots"], "documents": "Passport", "misc": 3}, "tips": ["Roll clothes"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Jacket", "Boots"}, list.Categories["clothing"])
	assert.Equal(t, []string{"Passport"}, list.Categories["documents"])
	assert.Equal(t, []string{}, list.Categories["misc"])
	assert.Equal(t, []string{"Roll clothes"}, list.Tips)

	_, err = NormalizePackingList(parse(t, `{"tips": []}`))
	assert.True(t, errors.Is(err, ErrShape))
}

func TestNormalizeBudget(t *testing.T) {
	analysis, err := NormalizeBudget(parse(t, `{
		"daily_budget": "$1,200",
		"categories": {"accommodation": 500, "food": "$300", "other": {"note": "souvenirs"}},
		"money_saving_tips": ["Cook breakfast"]
	}`))
	require.NoError(t, err)
	assert.Equal(t, float64(1200), analysis.DailyBudget)
	assert.Equal(t, map[string]float64{"accommodation": 500, "food": 300}, analysis.Categories)
	assert.Equal(t, map[string]any{"other": map[string]any{"note": "souvenirs"}}, analysis.Breakdown)
	assert.Equal(t, []string{"Cook breakfast"}, analysis.MoneySavingTips)
	assert.Equal(t, "", analysis.Analysis)

	_, err = NormalizeBudget(parse(t, `{"analysis": "looks fine"}`))
	assert.True(t, errors.Is(err, ErrShape))
}

func TestCoerceNumber(t *testing.T) {
	cases := map[string]float64{"$45": 45, "4.5/5": 4.5, "1,250.50 USD": 1250.5, "-3": -3}
	for in, want := range cases {
		got, ok := coerceNumber(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := coerceNumber("n/a")
	assert.False(t, ok)
	_, ok = coerceNumber(nil)
	assert.False(t, ok)
}
