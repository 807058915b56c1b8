package models

import (
	"time"

	"github.com/google/uuid"
)

// I-9 acceptable document lists.
const (
	DocumentListA = "A"
	DocumentListB = "B"
	DocumentListC = "C"
)

type I9Document struct {
	ID               uuid.UUID  `json:"id"`
	FormID           string     `json:"form_id"`
	ListType         string     `json:"list_type"`
	Title            string     `json:"title"`
	IssuingAuthority string     `json:"issuing_authority"`
	DocumentNumber   string     `json:"document_number"`
	ExpirationDate   *time.Time `json:"expiration_date,omitempty"`
	StorageKey       *string    `json:"storage_key,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (d *I9Document) Table() string { return "i9_documents" }

func (d *I9Document) Key() map[string]any {
	return map[string]any{"id": d.ID}
}

func (d *I9Document) Record() map[string]any {
	rec := map[string]any{
		"id":                d.ID,
		"form_id":           d.FormID,
		"list_type":         d.ListType,
		"title":             d.Title,
		"issuing_authority": d.IssuingAuthority,
		"document_number":   d.DocumentNumber,
		"expiration_date":   nil,
		"storage_key":       d.StorageKey,
		"created_at":        d.CreatedAt,
	}
	if d.ExpirationDate != nil {
		rec["expiration_date"] = *d.ExpirationDate
	}
	return rec
}

func I9DocumentFromRecord(rec map[string]any) (*I9Document, error) {
	id, err := recordUUID(rec, "id")
	if err != nil {
		return nil, err
	}
	return &I9Document{
		ID:               id,
		FormID:           recordString(rec, "form_id"),
		ListType:         recordString(rec, "list_type"),
		Title:            recordString(rec, "title"),
		IssuingAuthority: recordString(rec, "issuing_authority"),
		DocumentNumber:   recordString(rec, "document_number"),
		ExpirationDate:   recordTimePtr(rec, "expiration_date"),
		StorageKey:       recordStringPtr(rec, "storage_key"),
		CreatedAt:        recordTime(rec, "created_at"),
	}, nil
}
