package request_models

import "encoding/json"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password" binding:"required,min=6"`
	Name        string          `json:"name" binding:"max=100"`
	Preferences json.RawMessage `json:"preferences"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}
