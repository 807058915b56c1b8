package models

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	TeamID    uuid.UUID `json:"team_id"`
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Todo) Table() string { return "todos" }

func (t *Todo) Key() map[string]any {
	return map[string]any{
		"team_id": t.TeamID,
		"id":      t.ID,
	}
}

func (t *Todo) Record() map[string]any {
	return map[string]any{
		"team_id":    t.TeamID,
		"id":         t.ID,
		"user_id":    t.UserID,
		"title":      t.Title,
		"created_at": t.CreatedAt,
		"updated_at": t.UpdatedAt,
	}
}

func TodoFromRecord(rec map[string]any) (*Todo, error) {
	teamID, err := recordUUID(rec, "team_id")
	if err != nil {
		return nil, err
	}
	id, err := recordUUID(rec, "id")
	if err != nil {
		return nil, err
	}
	userID, err := recordUUID(rec, "user_id")
	if err != nil {
		return nil, err
	}
	return &Todo{
		TeamID:    teamID,
		ID:        id,
		UserID:    userID,
		Title:     recordString(rec, "title"),
		CreatedAt: recordTime(rec, "created_at"),
		UpdatedAt: recordTime(rec, "updated_at"),
	}, nil
}
