package dto

import (
	"strings"

	"github.com/google/uuid"
)

type CreateTodoRequest struct {
	Title string `json:"title"`
}

func (r *CreateTodoRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, required("title"))
	}
	return errs
}

type UpdateTodoRequest struct {
	Title string `json:"title"`
}

func (r *UpdateTodoRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, required("title"))
	}
	return errs
}

type TodoResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Title     string    `json:"title"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}
