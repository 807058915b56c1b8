package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// I9Section2 is the employer review-and-verification section. One row per
// form, written once by the employer controller.
type I9Section2 struct {
	ID                uuid.UUID       `json:"id"`
	FormID            string          `json:"form_id"`
	EmployerName      string          `json:"employer_name"`
	EmployerTitle     string          `json:"employer_title"`
	BusinessName      string          `json:"business_name"`
	BusinessAddress   string          `json:"business_address"`
	ExaminedDocuments json.RawMessage `json:"examined_documents,omitempty"`
	SignedAt          *time.Time      `json:"signed_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (s *I9Section2) Table() string { return "i9_section2" }

func (s *I9Section2) Key() map[string]any {
	return map[string]any{"id": s.ID}
}

func (s *I9Section2) Record() map[string]any {
	rec := map[string]any{
		"id":                 s.ID,
		"form_id":            s.FormID,
		"employer_name":      s.EmployerName,
		"employer_title":     s.EmployerTitle,
		"business_name":      s.BusinessName,
		"business_address":   s.BusinessAddress,
		"examined_documents": nil,
		"signed_at":          nil,
		"created_at":         s.CreatedAt,
	}
	if s.ExaminedDocuments != nil {
		rec["examined_documents"] = s.ExaminedDocuments
	}
	if s.SignedAt != nil {
		rec["signed_at"] = *s.SignedAt
	}
	return rec
}

func I9Section2FromRecord(rec map[string]any) (*I9Section2, error) {
	id, err := recordUUID(rec, "id")
	if err != nil {
		return nil, err
	}
	return &I9Section2{
		ID:                id,
		FormID:            recordString(rec, "form_id"),
		EmployerName:      recordString(rec, "employer_name"),
		EmployerTitle:     recordString(rec, "employer_title"),
		BusinessName:      recordString(rec, "business_name"),
		BusinessAddress:   recordString(rec, "business_address"),
		ExaminedDocuments: recordJSON(rec, "examined_documents"),
		SignedAt:          recordTimePtr(rec, "signed_at"),
		CreatedAt:         recordTime(rec, "created_at"),
	}, nil
}
