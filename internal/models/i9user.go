package models

import (
	"time"

	"github.com/google/uuid"
)

// I9User is an employee going through the I-9 employment verification
// workflow. Distinct from the SaaS User: applicants do not log in.
type I9User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *I9User) Table() string { return "i9_users" }

func (u *I9User) Key() map[string]any {
	return map[string]any{"id": u.ID}
}

func (u *I9User) Record() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"created_at": u.CreatedAt,
	}
}

func I9UserFromRecord(rec map[string]any) (*I9User, error) {
	id, err := recordUUID(rec, "id")
	if err != nil {
		return nil, err
	}
	return &I9User{
		ID:        id,
		Email:     recordString(rec, "email"),
		FirstName: recordString(rec, "first_name"),
		LastName:  recordString(rec, "last_name"),
		CreatedAt: recordTime(rec, "created_at"),
	}, nil
}
