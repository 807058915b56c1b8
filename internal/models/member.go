package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MemberStatusPending = "PENDING"
	MemberStatusActive  = "ACTIVE"
)

const (
	RoleOwner    = "OWNER"
	RoleAdmin    = "ADMIN"
	RoleReadOnly = "READ_ONLY"
)

func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleAdmin || role == RoleReadOnly
}

// Member is keyed by (team_id, member_key). For ACTIVE rows the member key
// is the user's id string; for PENDING rows it is the random invite code
// handed out before the invited user's real id is known.
type Member struct {
	TeamID    uuid.UUID  `json:"team_id"`
	MemberKey string     `json:"member_key"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Email     string     `json:"email"`
	Status    string     `json:"status"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}

func (m *Member) Table() string { return "members" }

func (m *Member) Key() map[string]any {
	return map[string]any{
		"team_id":    m.TeamID,
		"member_key": m.MemberKey,
	}
}

func (m *Member) Record() map[string]any {
	rec := map[string]any{
		"team_id":    m.TeamID,
		"member_key": m.MemberKey,
		"user_id":    nil,
		"email":      m.Email,
		"status":     m.Status,
		"role":       m.Role,
		"created_at": m.CreatedAt,
	}
	if m.UserID != nil {
		rec["user_id"] = *m.UserID
	}
	return rec
}

func MemberFromRecord(rec map[string]any) (*Member, error) {
	teamID, err := recordUUID(rec, "team_id")
	if err != nil {
		return nil, err
	}
	member := &Member{
		TeamID:    teamID,
		MemberKey: recordString(rec, "member_key"),
		Email:     recordString(rec, "email"),
		Status:    recordString(rec, "status"),
		Role:      recordString(rec, "role"),
		CreatedAt: recordTime(rec, "created_at"),
	}
	if rec["user_id"] != nil {
		userID, err := recordUUID(rec, "user_id")
		if err != nil {
			return nil, err
		}
		member.UserID = &userID
	}
	return member, nil
}
