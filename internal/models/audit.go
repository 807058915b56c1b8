package models

import "time"

// Audit actions recorded against a form.
const (
	AuditActionInitiated   = "FORM_INITIATED"
	AuditActionSection2    = "SECTION_2_SIGNED"
	AuditActionReverified  = "REVERIFICATION_SIGNED"
	AuditActionDocuments   = "DOCUMENTS_RECORDED"
	AuditActionEmailSent   = "EMAIL_SENT"
	AuditActionTranslator  = "TRANSLATOR_ATTACHED"
)

// AuditEntry ids are ULIDs so the trail sorts chronologically by primary
// key alone.
type AuditEntry struct {
	ID        string    `json:"id"`
	FormID    string    `json:"form_id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *AuditEntry) Table() string { return "audit_trail" }

func (e *AuditEntry) Key() map[string]any {
	return map[string]any{"id": e.ID}
}

func (e *AuditEntry) Record() map[string]any {
	return map[string]any{
		"id":         e.ID,
		"form_id":    e.FormID,
		"actor":      e.Actor,
		"action":     e.Action,
		"detail":     e.Detail,
		"created_at": e.CreatedAt,
	}
}

func AuditEntryFromRecord(rec map[string]any) (*AuditEntry, error) {
	return &AuditEntry{
		ID:        recordString(rec, "id"),
		FormID:    recordString(rec, "form_id"),
		Actor:     recordString(rec, "actor"),
		Action:    recordString(rec, "action"),
		Detail:    recordString(rec, "detail"),
		CreatedAt: recordTime(rec, "created_at"),
	}, nil
}
