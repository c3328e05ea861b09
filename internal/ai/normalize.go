package ai

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

func asObject(v any, what string) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a JSON object, got %T", ErrShape, what, v)
	}
	return obj, nil
}

func hasKey(obj map[string]any, keys ...string) bool {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return true
		}
	}
	return false
}

// NormalizeItinerary validates a parsed reply and decodes it into an Itinerary.
// Once summary or days is present it never fails: values that cannot be
// repaired leave their field at its zero value.
func NormalizeItinerary(v any) (Itinerary, error) {
	obj, err := asObject(v, "itinerary")
	if err != nil {
		return Itinerary{}, err
	}
	if !hasKey(obj, "summary", "days") {
		return Itinerary{}, fmt.Errorf("%w: itinerary has neither summary nor days", ErrShape)
	}

	foldRecommendations(obj)
	numberDays(obj)

	var it Itinerary
	if err := decodeItinerary(obj, &it); err != nil {
		it = Itinerary{}
		for _, key := range sortedKeys(obj) {
			trial := it
			if decodeItinerary(map[string]any{key: obj[key]}, &trial) == nil {
				it = trial
			}
		}
	}
	return it.withEmptyCollections(), nil
}

// decodeItinerary decodes src into it. Fields whose values drift beyond what the
// hooks can repair fail the whole call; NormalizeItinerary then retries per key.
func decodeItinerary(src map[string]any, it *Itinerary) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(activityFromText, listToText, objectToText),
		Result:           it,
	})
	if err != nil {
		return err
	}
	return dec.Decode(src)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var activityStructType = reflect.TypeOf(Activity{})

// activityFromText lets a plain string stand in for an Activity.
func activityFromText(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to == activityStructType && from.Kind() == reflect.String {
		return map[string]any{"activity": data}, nil
	}
	return data, nil
}

// listToText joins a list the model returned where a sentence was expected.
func listToText(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.String && from.Kind() == reflect.Slice {
		if list, ok := coerceList(data); ok {
			return strings.Join(list, "; "), nil
		}
	}
	return data, nil
}

// objectToText flattens an object the model returned where a sentence was expected.
func objectToText(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String || from.Kind() != reflect.Map {
		return data, nil
	}
	m, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}
	return objectText(m), nil
}

// objectText renders a named item as itemText does and anything else as
// "key: value" pairs in key order.
func objectText(m map[string]any) string {
	if s := itemText(m); s != "" {
		return s
	}
	parts := make([]string, 0, len(m))
	for _, k := range sortedKeys(m) {
		var text string
		switch v := m[k].(type) {
		case map[string]any:
			text = objectText(v)
		case []any:
			list, _ := coerceList(v)
			text = strings.Join(list, ", ")
		default:
			text, _ = coerceText(v)
		}
		if text != "" {
			parts = append(parts, k+": "+text)
		}
	}
	return strings.Join(parts, "; ")
}

// numberDays rewrites each day's "day" to an integer: the first number in the
// value ("Day 2" is 2), or the day's 1-based position when there is none.
func numberDays(obj map[string]any) {
	days, ok := obj["days"].([]any)
	if !ok {
		return
	}
	for i, raw := range days {
		day, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if n, ok := coerceNumber(day["day"]); ok && n == float64(int(n)) {
			day["day"] = int(n)
			continue
		}
		day["day"] = i + 1
	}
}

// foldRecommendations maps the plural "recommendations" key some budget lines
// carry onto "recommendation".
func foldRecommendations(obj map[string]any) {
	lines, ok := obj["budget_breakdown"].(map[string]any)
	if !ok {
		return
	}
	for _, raw := range lines {
		line, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		rec, ok := line["recommendations"]
		if !ok {
			continue
		}
		if _, exists := line["recommendation"]; !exists {
			if list, ok := coerceList(rec); ok {
				line["recommendation"] = strings.Join(list, ", ")
			}
		}
		delete(line, "recommendations")
	}
}

func (it Itinerary) withEmptyCollections() Itinerary {
	if it.Highlights == nil {
		it.Highlights = []string{}
	}
	if it.BestNeighborhoods == nil {
		it.BestNeighborhoods = []string{}
	}
	if it.Days == nil {
		it.Days = []DayPlan{}
	}
	for i := range it.Days {
		if it.Days[i].Activities == nil {
			it.Days[i].Activities = []Activity{}
		}
	}
	if it.Alternatives == nil {
		it.Alternatives = []AlternativePlan{}
	}
	for i := range it.Alternatives {
		if it.Alternatives[i].Activities == nil {
			it.Alternatives[i].Activities = []string{}
		}
	}
	if it.BudgetBreakdown == nil {
		it.BudgetBreakdown = map[string]BudgetLine{}
	}
	for k, line := range it.BudgetBreakdown {
		if line.Tips == nil {
			line.Tips = []string{}
			it.BudgetBreakdown[k] = line
		}
	}
	if it.BudgetTips == nil {
		it.BudgetTips = []string{}
	}
	return it
}

// NormalizeSuggestions accepts a list, an object holding a "suggestions" list,
// or a single object. Items that are not objects are dropped.
func NormalizeSuggestions(v any) ([]Suggestion, error) {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case map[string]any:
		if raw, ok := t["suggestions"]; ok {
			list, ok := raw.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: suggestions must be a list, got %T", ErrShape, raw)
			}
			items = list
		} else {
			items = []any{t}
		}
	default:
		return nil, fmt.Errorf("%w: suggestions must be a list or object, got %T", ErrShape, v)
	}

	out := make([]Suggestion, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, normalizeSuggestion(obj))
		}
	}
	return out, nil
}

func NormalizeRecommendations(v any, activityType string) (Recommendations, error) {
	obj, err := asObject(v, "recommendations")
	if err != nil {
		return Recommendations{}, err
	}
	recs, ok := coerceList(obj["recommendations"])
	if !ok {
		return Recommendations{}, fmt.Errorf("%w: missing recommendations list", ErrShape)
	}
	tips, _ := coerceList(obj["tips"])
	if tips == nil {
		tips = []string{}
	}
	return Recommendations{Recommendations: recs, Tips: tips, ActivityType: activityType}, nil
}

func NormalizePackingList(v any) (PackingList, error) {
	obj, err := asObject(v, "packing list")
	if err != nil {
		return PackingList{}, err
	}
	rawCats, ok := obj["categories"].(map[string]any)
	if !ok {
		return PackingList{}, fmt.Errorf("%w: missing categories object", ErrShape)
	}

	cats := make(map[string][]string, len(rawCats))
	for name, items := range rawCats {
		list, ok := coerceList(items)
		if !ok {
			list = []string{}
		}
		cats[name] = list
	}
	tips, _ := coerceList(obj["tips"])
	if tips == nil {
		tips = []string{}
	}
	return PackingList{Categories: cats, Tips: tips}, nil
}

// NormalizeBudget keeps numeric categories and moves anything else into Breakdown.
func NormalizeBudget(v any) (BudgetAnalysis, error) {
	obj, err := asObject(v, "budget analysis")
	if err != nil {
		return BudgetAnalysis{}, err
	}
	if !hasKey(obj, "daily_budget", "categories") {
		return BudgetAnalysis{}, fmt.Errorf("%w: budget has neither daily_budget nor categories", ErrShape)
	}

	out := BudgetAnalysis{
		Categories:      map[string]float64{},
		MoneySavingTips: []string{},
		Breakdown:       map[string]any{},
	}
	out.Analysis, _ = coerceText(obj["analysis"])
	out.DailyBudget, _ = coerceNumber(obj["daily_budget"])

	if raw, ok := obj["breakdown"].(map[string]any); ok {
		for k, val := range raw {
			out.Breakdown[k] = val
		}
	}
	if cats, ok := obj["categories"].(map[string]any); ok {
		for name, val := range cats {
			if n, ok := coerceNumber(val); ok {
				out.Categories[name] = n
			} else {
				out.Breakdown[name] = val
			}
		}
	}
	for _, key := range []string{"money_saving_tips", "tips"} {
		if tips, ok := coerceList(obj[key]); ok {
			out.MoneySavingTips = tips
			break
		}
	}
	return out, nil
}
