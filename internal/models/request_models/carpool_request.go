package request_models

// CreateCarpoolRequest accepts both from/to and start/destination spellings.
type CreateCarpoolRequest struct {
	Seats       *int   `json:"seats"`
	From        string `json:"from"`
	Start       string `json:"start"`
	To          string `json:"to"`
	Destination string `json:"destination"`
	Departure   string `json:"departure"`
}

func (r CreateCarpoolRequest) FromLocation() string {
	if r.From != "" {
		return r.From
	}
	return r.Start
}

func (r CreateCarpoolRequest) ToLocation() string {
	if r.To != "" {
		return r.To
	}
	return r.Destination
}
