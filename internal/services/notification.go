package services

import (
	"context"
	"time"

	"github.com/clearhire/clearhire-api/internal/logger"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/internal/repository"
	"github.com/oklog/ulid/v2"
)

// Email templates recorded in the notification log.
const (
	TemplateTeamInvite     = "team_invite"
	TemplateI9Request      = "i9_request"
	TemplateReverification = "i9_reverification"
)

// NotificationService sends transactional email and appends an entry to
// the notification log for every attempt, delivered or not.
type NotificationService struct {
	email *EmailService
	logs  *repository.NotificationLogRepository
	log   *logger.Logger
}

func NewNotificationService(email *EmailService, logs *repository.NotificationLogRepository, log *logger.Logger) *NotificationService {
	return &NotificationService{email: email, logs: logs, log: log}
}

// Send delivers the email and records the attempt. The log write is the
// authoritative outcome record; a failed delivery is logged FAILED and
// the send error returned.
func (s *NotificationService) Send(ctx context.Context, recipient, subject, template string, formID *string, body string) error {
	sendErr := s.email.Send(recipient, subject, body)

	status := models.NotificationStatusSent
	if sendErr != nil {
		status = models.NotificationStatusFailed
		s.log.Errorw("email delivery failed", "recipient", recipient, "template", template, "error", sendErr)
	}

	entry := &models.NotificationLog{
		ID:        ulid.Make().String(),
		Recipient: recipient,
		Subject:   subject,
		Template:  template,
		FormID:    formID,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		return err
	}
	return sendErr
}

// History returns the delivery log for one form.
func (s *NotificationService) History(ctx context.Context, formID string) ([]*models.NotificationLog, error) {
	return s.logs.FindAllByFormID(ctx, formID)
}
