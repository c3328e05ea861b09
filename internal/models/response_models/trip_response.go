package response_models

import (
	"encoding/json"
	"time"

	"voyage/internal/models/db_models"
	"voyage/pkg/utils"
)

type TripResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	StartDate     *string         `json:"startDate"`
	EndDate       *string         `json:"endDate"`
	BudgetCents   *int64          `json:"budgetCents"`
	Location      string          `json:"location"`
	Vehicle       string          `json:"vehicle"`
	Accessibility json.RawMessage `json:"accessibility"`
	Itinerary     json.RawMessage `json:"itinerary"`
	Owner         *UserResponse   `json:"owner,omitempty"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

func NewTripResponse(t db_models.Trip) TripResponse {
	resp := TripResponse{
		ID:            t.ID.String(),
		Title:         t.Title,
		StartDate:     utils.FormatDate(t.StartDate),
		EndDate:       utils.FormatDate(t.EndDate),
		BudgetCents:   t.BudgetCents,
		Location:      t.Location,
		Vehicle:       t.Vehicle,
		Accessibility: rawOrNull(t.Accessibility),
		Itinerary:     rawOrNull(t.Itinerary),
		CreatedAt:     utils.FormatRFC3339(time.Unix(t.CreatedAt, 0)),
		UpdatedAt:     utils.FormatRFC3339(time.Unix(t.UpdatedAt, 0)),
	}
	if t.Owner.ID == t.OwnerID {
		owner := NewUserResponse(t.Owner)
		resp.Owner = &owner
	}
	return resp
}

func NewTripResponses(trips []db_models.Trip) []TripResponse {
	out := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, NewTripResponse(t))
	}
	return out
}

type TripRequestResponse struct {
	ID        string        `json:"id"`
	Trip      string        `json:"trip"`
	Requester *UserResponse `json:"requester,omitempty"`
	Status    string        `json:"status"`
	Message   string        `json:"message"`
	CreatedAt string        `json:"createdAt"`
}

func NewTripRequestResponse(r db_models.TripRequest) TripRequestResponse {
	resp := TripRequestResponse{
		ID:        r.ID.String(),
		Trip:      r.TripID.String(),
		Status:    r.Status,
		Message:   r.Message,
		CreatedAt: utils.FormatRFC3339(time.Unix(r.CreatedAt, 0)),
	}
	if r.Requester.ID == r.RequesterID {
		requester := NewUserResponse(r.Requester)
		resp.Requester = &requester
	}
	return resp
}

func NewTripRequestResponses(reqs []db_models.TripRequest) []TripRequestResponse {
	out := make([]TripRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, NewTripRequestResponse(r))
	}
	return out
}

func rawOrNull(b []byte) json.RawMessage {
	if len(b) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(b)
}
