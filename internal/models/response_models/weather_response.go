package response_models

type WeatherResponse struct {
	Location    string   `json:"location"`
	Summary     string   `json:"summary"`
	TempC       *float64 `json:"tempC"`
	RetrievedAt string   `json:"retrievedAt"`
}
