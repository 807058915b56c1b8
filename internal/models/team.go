package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTeamName is given to the team auto-created on a user's first
// authenticated request.
const DefaultTeamName = "New Team"

type Team struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Team) Table() string { return "teams" }

func (t *Team) Key() map[string]any {
	return map[string]any{"id": t.ID}
}

func (t *Team) Record() map[string]any {
	return map[string]any{
		"id":         t.ID,
		"name":       t.Name,
		"owner_id":   t.OwnerID,
		"created_at": t.CreatedAt,
		"updated_at": t.UpdatedAt,
	}
}

func TeamFromRecord(rec map[string]any) (*Team, error) {
	id, err := recordUUID(rec, "id")
	if err != nil {
		return nil, err
	}
	ownerID, err := recordUUID(rec, "owner_id")
	if err != nil {
		return nil, err
	}
	return &Team{
		ID:        id,
		Name:      recordString(rec, "name"),
		OwnerID:   ownerID,
		CreatedAt: recordTime(rec, "created_at"),
		UpdatedAt: recordTime(rec, "updated_at"),
	}, nil
}
