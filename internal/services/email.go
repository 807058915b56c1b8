package services

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/clearhire/clearhire-api/internal/config"
)

type EmailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != "" && s.cfg.From != ""
}

func (s *EmailService) Send(to, subject, body string) error {
	if !s.IsConfigured() {
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.From, to, subject, body)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}

func (s *EmailService) SendTeamInvite(to, teamName, code string) error {
	subject := fmt.Sprintf("You've been invited to join %s", teamName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Team Invitation</h2>
			<p>Hi,</p>
			<p>You have been invited to join the team <strong>%s</strong>.</p>
			<p>Use the invite code <strong>%s</strong> to join.</p>
		</body>
		</html>
	`, teamName, code)

	return s.Send(to, subject, body)
}

// I9RequestEmail composes the invitation mail asking an employee to fill
// out their form. Delivery goes through NotificationService so the
// attempt lands in the notification log.
func I9RequestEmail(formURL string, dueDate *time.Time) (subject, body string) {
	due := ""
	if dueDate != nil {
		due = fmt.Sprintf("<p>Please complete it by <strong>%s</strong>.</p>", dueDate.Format("January 2, 2006"))
	}
	body = fmt.Sprintf(`
		<html>
		<body>
			<h2>Employment Eligibility Verification</h2>
			<p>Hi,</p>
			<p>Your employer has asked you to complete Form I-9.</p>
			<p><a href="%s">Click here to fill out your form</a></p>
			%s
		</body>
		</html>
	`, formURL, due)

	return "Action required: complete your Form I-9", body
}

// ReverificationEmail composes the notice that a work authorization is
// due for reverification.
func ReverificationEmail(formURL string) (subject, body string) {
	body = fmt.Sprintf(`
		<html>
		<body>
			<h2>Work Authorization Reverification</h2>
			<p>Hi,</p>
			<p>Your work authorization is due for reverification.</p>
			<p><a href="%s">Review your Form I-9</a></p>
		</body>
		</html>
	`, formURL)

	return "Work authorization reverification required", body
}
