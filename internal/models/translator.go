package models

import (
	"time"

	"github.com/google/uuid"
)

// Translator records the preparer/translator attestation attached to a
// form when someone assisted the employee with section 1.
type Translator struct {
	ID        uuid.UUID  `json:"id"`
	FormID    string     `json:"form_id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Address   string     `json:"address"`
	SignedAt  *time.Time `json:"signed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (t *Translator) Table() string { return "translators" }

func (t *Translator) Key() map[string]any {
	return map[string]any{"id": t.ID}
}

func (t *Translator) Record() map[string]any {
	rec := map[string]any{
		"id":         t.ID,
		"form_id":    t.FormID,
		"first_name": t.FirstName,
		"last_name":  t.LastName,
		"address":    t.Address,
		"signed_at":  nil,
		"created_at": t.CreatedAt,
	}
	if t.SignedAt != nil {
		rec["signed_at"] = *t.SignedAt
	}
	return rec
}

func TranslatorFromRecord(rec map[string]any) (*Translator, error) {
	id, err := recordUUID(rec, "id")
	if err != nil {
		return nil, err
	}
	return &Translator{
		ID:        id,
		FormID:    recordString(rec, "form_id"),
		FirstName: recordString(rec, "first_name"),
		LastName:  recordString(rec, "last_name"),
		Address:   recordString(rec, "address"),
		SignedAt:  recordTimePtr(rec, "signed_at"),
		CreatedAt: recordTime(rec, "created_at"),
	}, nil
}
