package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Greedy on purpose: first '{' through last '}'.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON returns the widest {...} span in text, or text unchanged when it
// holds no such span. Two separate objects in one reply yield an invalid span;
// that case falls through to the parse stage and degrades to the fallback.
func ExtractJSON(text string) string {
	if m := jsonObjectPattern.FindString(text); m != "" {
		return m
	}
	return text
}

// decodeResponse turns raw model text into a generic JSON value. The extracted
// object is tried first; a reply that is already valid JSON once markdown
// fences are stripped (such as a bare array) is accepted as is.
func decodeResponse(raw string) (any, error) {
	var out any
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &out); err == nil {
		return out, nil
	}

	if err := json.Unmarshal([]byte(stripFences(raw)), &out); err == nil {
		return out, nil
	}

	return nil, fmt.Errorf("%w: %d bytes of unparseable output", ErrParse, len(raw))
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
