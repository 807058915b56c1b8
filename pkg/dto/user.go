package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	FirstSignIn time.Time `json:"first_sign_in"`
}

// SettingsResponse is the profile page payload: the user, their teams,
// and the billing plan resolved from the subscription snapshot.
type SettingsResponse struct {
	User  UserResponse   `json:"user"`
	Teams []TeamResponse `json:"teams"`
	Roles []string       `json:"roles"`
	Plan  any            `json:"plan"`
}
