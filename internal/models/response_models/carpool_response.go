package response_models

import (
	"voyage/internal/models/db_models"
	"voyage/pkg/utils"
)

type CarpoolResponse struct {
	ID        string `json:"id"`
	Trip      string `json:"trip"`
	Host      string `json:"host"`
	Seats     int    `json:"seats"`
	From      string `json:"from"`
	To        string `json:"to"`
	Departure string `json:"departure"`
}

func NewCarpoolResponse(c db_models.Carpool) CarpoolResponse {
	return CarpoolResponse{
		ID:        c.ID.String(),
		Trip:      c.TripID.String(),
		Host:      c.HostID.String(),
		Seats:     c.Seats,
		From:      c.FromLocation,
		To:        c.ToLocation,
		Departure: utils.FormatRFC3339(c.Departure),
	}
}

func NewCarpoolResponses(carpools []db_models.Carpool) []CarpoolResponse {
	out := make([]CarpoolResponse, 0, len(carpools))
	for _, c := range carpools {
		out = append(out, NewCarpoolResponse(c))
	}
	return out
}
