package models

import (
	"time"

	"github.com/google/uuid"
)

// InitiationMetadata captures who kicked off a form and when it is due.
// One row per form.
type InitiationMetadata struct {
	ID            uuid.UUID  `json:"id"`
	FormID        string     `json:"form_id"`
	InitiatedBy   string     `json:"initiated_by"`
	EmployeeEmail string     `json:"employee_email"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (m *InitiationMetadata) Table() string { return "initiation_metadata" }

func (m *InitiationMetadata) Key() map[string]any {
	return map[string]any{"id": m.ID}
}

func (m *InitiationMetadata) Record() map[string]any {
	rec := map[string]any{
		"id":             m.ID,
		"form_id":        m.FormID,
		"initiated_by":   m.InitiatedBy,
		"employee_email": m.EmployeeEmail,
		"due_date":       nil,
		"created_at":     m.CreatedAt,
	}
	if m.DueDate != nil {
		rec["due_date"] = *m.DueDate
	}
	return rec
}

func InitiationMetadataFromRecord(rec map[string]any) (*InitiationMetadata, error) {
	id, err := recordUUID(rec, "id")
	if err != nil {
		return nil, err
	}
	return &InitiationMetadata{
		ID:            id,
		FormID:        recordString(rec, "form_id"),
		InitiatedBy:   recordString(rec, "initiated_by"),
		EmployeeEmail: recordString(rec, "employee_email"),
		DueDate:       recordTimePtr(rec, "due_date"),
		CreatedAt:     recordTime(rec, "created_at"),
	}, nil
}
