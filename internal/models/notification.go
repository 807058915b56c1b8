package models

import "time"

const (
	NotificationStatusSent   = "SENT"
	NotificationStatusFailed = "FAILED"
)

// NotificationLog is an append-only record of every transactional email the
// system attempted, keyed by ULID.
type NotificationLog struct {
	ID        string    `json:"id"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Template  string    `json:"template"`
	FormID    *string   `json:"form_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *NotificationLog) Table() string { return "notification_log" }

func (n *NotificationLog) Key() map[string]any {
	return map[string]any{"id": n.ID}
}

func (n *NotificationLog) Record() map[string]any {
	return map[string]any{
		"id":         n.ID,
		"recipient":  n.Recipient,
		"subject":    n.Subject,
		"template":   n.Template,
		"form_id":    n.FormID,
		"status":     n.Status,
		"created_at": n.CreatedAt,
	}
}

func NotificationLogFromRecord(rec map[string]any) (*NotificationLog, error) {
	return &NotificationLog{
		ID:        recordString(rec, "id"),
		Recipient: recordString(rec, "recipient"),
		Subject:   recordString(rec, "subject"),
		Template:  recordString(rec, "template"),
		FormID:    recordStringPtr(rec, "form_id"),
		Status:    recordString(rec, "status"),
		CreatedAt: recordTime(rec, "created_at"),
	}, nil
}
