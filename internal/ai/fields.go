package ai

import (
	"regexp"
	"strconv"
	"strings"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindList
	kindNumber
	kindObject
)

// fieldSpec describes one canonical suggestion key. A value is read from Name,
// then from each alias in order; Derive replaces reading altogether.
type fieldSpec struct {
	Name    string
	Kind    fieldKind
	Aliases []string
	Derive  func(src map[string]any) any
}

var suggestionFields = []fieldSpec{
	{Name: "destination", Kind: kindText},
	{Name: "country", Kind: kindText},
	{Name: "title", Kind: kindText, Aliases: []string{"destination"}},
	{Name: "description", Kind: kindText, Aliases: []string{"longDescription"}},
	{Name: "longDescription", Kind: kindText, Aliases: []string{"description"}},
	{Name: "destinationType", Kind: kindText},
	{Name: "reasonToVisit", Kind: kindText},
	{Name: "whySpecialForYou", Kind: kindText},
	{Name: "highlights", Kind: kindList},
	{Name: "activities", Kind: kindList},
	{Name: "mustTryActivities", Kind: kindList},
	{Name: "uniqueFeatures", Kind: kindList},
	{Name: "cultureAndHeritage", Kind: kindList},
	{Name: "localCuisine", Kind: kindList},
	{Name: "culture", Kind: kindText, Derive: deriveCulture},
	{Name: "cuisine", Kind: kindText, Derive: deriveCuisine},
	{Name: "socialScene", Kind: kindText},
	{Name: "climate", Kind: kindText},
	{Name: "bestTimeToVisit", Kind: kindText},
	{Name: "recommendedDuration", Kind: kindText},
	{Name: "accommodation", Kind: kindText},
	{Name: "transport", Kind: kindText},
	{Name: "estimatedBudget", Kind: kindText},
	{Name: "budgetBreakdown", Kind: kindObject},
	{Name: "proTips", Kind: kindList},
	{Name: "travelTips", Kind: kindList},
	{Name: "visaRequirements", Kind: kindText},
	{Name: "safety", Kind: kindText},
	{Name: "bestNeighborhoods", Kind: kindList},
	{Name: "seasonalEvents", Kind: kindList},
	{Name: "rating", Kind: kindNumber},
	{Name: "matchScore", Kind: kindNumber},
}

func (k fieldKind) zero() any {
	switch k {
	case kindList:
		return []string{}
	case kindNumber:
		return float64(0)
	case kindObject:
		return map[string]any{}
	default:
		return ""
	}
}

// coerce converts v to the kind, reporting false when nothing usable is there.
func (k fieldKind) coerce(v any) (any, bool) {
	switch k {
	case kindList:
		l, ok := coerceList(v)
		return l, ok
	case kindNumber:
		n, ok := coerceNumber(v)
		return n, ok
	case kindObject:
		m, ok := v.(map[string]any)
		return m, ok
	default:
		s, ok := coerceText(v)
		return s, ok
	}
}

func normalizeSuggestion(src map[string]any) Suggestion {
	out := make(Suggestion, len(suggestionFields))
	for _, f := range suggestionFields {
		if f.Derive != nil {
			out[f.Name] = f.Derive(src)
			continue
		}
		out[f.Name] = f.Kind.zero()
		for _, key := range append([]string{f.Name}, f.Aliases...) {
			if v, ok := f.Kind.coerce(src[key]); ok {
				out[f.Name] = v
				break
			}
		}
	}
	return out
}

func deriveCulture(src map[string]any) any {
	items, _ := coerceList(src["cultureAndHeritage"])
	return strings.Join(firstN(items, 3), " | ")
}

func deriveCuisine(src map[string]any) any {
	items, _ := coerceList(src["localCuisine"])
	names := make([]string, 0, 3)
	for _, dish := range firstN(items, 3) {
		name, _, _ := strings.Cut(dish, " - ")
		names = append(names, name)
	}
	return strings.Join(names, " | ")
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func coerceText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// coerceList accepts a list of scalars or named objects, or a single string.
func coerceList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...), true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				if s := itemText(m); s != "" {
					out = append(out, s)
				}
				continue
			}
			if s, ok := coerceText(item); ok {
				out = append(out, s)
			}
		}
		return out, true
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}, true
		}
	}
	return nil, false
}

// itemText renders {"name": ..., "description": ...} style entries as "name - description".
func itemText(m map[string]any) string {
	var name string
	for _, key := range []string{"name", "title", "place", "item", "activity", "tip"} {
		if s, ok := coerceText(m[key]); ok {
			name = s
			break
		}
	}
	if name == "" {
		return ""
	}
	if desc, ok := coerceText(m["description"]); ok {
		return name + " - " + desc
	}
	return name
}

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// coerceNumber reads numbers and numeric strings such as "$1,200" or "4.5/5".
func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		m := numberPattern.FindString(strings.ReplaceAll(t, ",", ""))
		if m == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(m, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
