package request_models

type ChatRequest struct {
	Message string         `json:"message"`
	Context map[string]any `json:"context"`
	TripID  string         `json:"trip_id"`
}

type SuggestionsQuery struct {
	Location  string `form:"location"`
	Budget    string `form:"budget"`
	Duration  string `form:"duration"`
	Interests string `form:"interests"`
}
