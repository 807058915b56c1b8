package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	I9FormStatusInitiated  = "INITIATED"
	I9FormStatusSection1   = "SECTION_1_COMPLETE"
	I9FormStatusSection2   = "SECTION_2_COMPLETE"
	I9FormStatusReverified = "REVERIFIED"
)

type I9Form struct {
	ID           uuid.UUID       `json:"id"`
	FormID       string          `json:"form_id"`
	I9UserID     uuid.UUID       `json:"i9_user_id"`
	Status       string          `json:"status"`
	EmployeeData json.RawMessage `json:"employee_data,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (f *I9Form) Table() string { return "i9_forms" }

func (f *I9Form) Key() map[string]any {
	return map[string]any{"id": f.ID}
}

func (f *I9Form) Record() map[string]any {
	rec := map[string]any{
		"id":            f.ID,
		"form_id":       f.FormID,
		"i9_user_id":    f.I9UserID,
		"status":        f.Status,
		"employee_data": nil,
		"created_at":    f.CreatedAt,
		"updated_at":    f.UpdatedAt,
	}
	if f.EmployeeData != nil {
		rec["employee_data"] = f.EmployeeData
	}
	return rec
}

func I9FormFromRecord(rec map[string]any) (*I9Form, error) {
	id, err := recordUUID(rec, "id")
	if err != nil {
		return nil, err
	}
	userID, err := recordUUID(rec, "i9_user_id")
	if err != nil {
		return nil, err
	}
	return &I9Form{
		ID:           id,
		FormID:       recordString(rec, "form_id"),
		I9UserID:     userID,
		Status:       recordString(rec, "status"),
		EmployeeData: recordJSON(rec, "employee_data"),
		CreatedAt:    recordTime(rec, "created_at"),
		UpdatedAt:    recordTime(rec, "updated_at"),
	}, nil
}
