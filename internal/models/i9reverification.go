package models

import (
	"time"

	"github.com/google/uuid"
)

// I9Reverification is a section 3 supplement: rehire or reverification of
// expiring work authorization.
type I9Reverification struct {
	ID             uuid.UUID  `json:"id"`
	FormID         string     `json:"form_id"`
	NewName        *string    `json:"new_name,omitempty"`
	RehireDate     *time.Time `json:"rehire_date,omitempty"`
	DocumentTitle  string     `json:"document_title"`
	DocumentNumber string     `json:"document_number"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	SignedAt       *time.Time `json:"signed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (r *I9Reverification) Table() string { return "i9_reverifications" }

func (r *I9Reverification) Key() map[string]any {
	return map[string]any{"id": r.ID}
}

func (r *I9Reverification) Record() map[string]any {
	rec := map[string]any{
		"id":              r.ID,
		"form_id":         r.FormID,
		"new_name":        r.NewName,
		"rehire_date":     nil,
		"document_title":  r.DocumentTitle,
		"document_number": r.DocumentNumber,
		"expiration_date": nil,
		"signed_at":       nil,
		"created_at":      r.CreatedAt,
	}
	if r.RehireDate != nil {
		rec["rehire_date"] = *r.RehireDate
	}
	if r.ExpirationDate != nil {
		rec["expiration_date"] = *r.ExpirationDate
	}
	if r.SignedAt != nil {
		rec["signed_at"] = *r.SignedAt
	}
	return rec
}

func I9ReverificationFromRecord(rec map[string]any) (*I9Reverification, error) {
	id, err := recordUUID(rec, "id")
	if err != nil {
		return nil, err
	}
	return &I9Reverification{
		ID:             id,
		FormID:         recordString(rec, "form_id"),
		NewName:        recordStringPtr(rec, "new_name"),
		RehireDate:     recordTimePtr(rec, "rehire_date"),
		DocumentTitle:  recordString(rec, "document_title"),
		DocumentNumber: recordString(rec, "document_number"),
		ExpirationDate: recordTimePtr(rec, "expiration_date"),
		SignedAt:       recordTimePtr(rec, "signed_at"),
		CreatedAt:      recordTime(rec, "created_at"),
	}, nil
}
