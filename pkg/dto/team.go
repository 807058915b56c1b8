package dto

import (
	"strings"

	"github.com/google/uuid"
)

type RenameTeamRequest struct {
	Name string `json:"name"`
}

func (r *RenameTeamRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, required("name"))
	}
	return errs
}

type InviteMemberRequest struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

func (r *InviteMemberRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, required("email"))
	} else if !strings.Contains(r.Email, "@") {
		errs = append(errs, invalid("email"))
	}
	return errs
}

type JoinTeamRequest struct {
	Code string `json:"code"`
}

func (r *JoinTeamRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Code) == "" {
		errs = append(errs, required("code"))
	}
	return errs
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

func (r *UpdateRoleRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Role) == "" {
		errs = append(errs, required("role"))
	}
	return errs
}

type TeamResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"owner_id"`
}

type MemberResponse struct {
	TeamID    uuid.UUID  `json:"team_id"`
	MemberKey string     `json:"member_key"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Email     string     `json:"email"`
	Status    string     `json:"status"`
	Role      string     `json:"role"`
}

type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

type UpdatedResponse struct {
	Updated bool `json:"updated"`
}
