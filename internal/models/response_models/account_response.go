package response_models

import (
	"encoding/json"

	"voyage/internal/models/db_models"
)

type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	AvatarURL   string          `json:"avatarUrl"`
	Bio         string          `json:"bio"`
	Preferences json.RawMessage `json:"preferences"`
	Role        string          `json:"role"`
}

type AuthResponse struct {
	Token   string       `json:"token"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
}

func NewUserResponse(a db_models.Account) UserResponse {
	prefs := json.RawMessage(a.Preferences)
	if len(prefs) == 0 {
		prefs = json.RawMessage("{}")
	}
	return UserResponse{
		ID:          a.ID.String(),
		Email:       a.Email,
		Name:        a.Name,
		AvatarURL:   a.AvatarURL,
		Bio:         a.Bio,
		Preferences: prefs,
		Role:        a.Role,
	}
}
