package services

import (
	"testing"
	"time"

	"github.com/clearhire/clearhire-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestEmailService_IsConfigured_True(t *testing.T) {
	cfg := config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "user@example.com",
		Password: "password",
		From:     "noreply@example.com",
	}
	svc := NewEmailService(cfg)

	assert.True(t, svc.IsConfigured())
}

func TestEmailService_IsConfigured_MissingHost(t *testing.T) {
	cfg := config.SMTPConfig{
		Port:     "587",
		Username: "user@example.com",
		Password: "password",
		From:     "noreply@example.com",
	}
	svc := NewEmailService(cfg)

	assert.False(t, svc.IsConfigured())
}

func TestEmailService_IsConfigured_MissingFrom(t *testing.T) {
	cfg := config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "user@example.com",
		Password: "password",
	}
	svc := NewEmailService(cfg)

	assert.False(t, svc.IsConfigured())
}

func TestEmailService_Send_NotConfigured(t *testing.T) {
	svc := NewEmailService(config.SMTPConfig{})

	// Unconfigured SMTP is a silent no-op so development environments
	// don't need a mail server.
	err := svc.Send("to@example.com", "Subject", "Body")

	assert.NoError(t, err)
}

func TestI9RequestEmail_WithDueDate(t *testing.T) {
	due := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	subject, body := I9RequestEmail("https://app.example.com/i9/forms/I9-01ABC", &due)

	assert.Equal(t, "Action required: complete your Form I-9", subject)
	assert.Contains(t, body, "https://app.example.com/i9/forms/I9-01ABC")
	assert.Contains(t, body, "March 15, 2026")
}

func TestI9RequestEmail_NoDueDate(t *testing.T) {
	_, body := I9RequestEmail("https://app.example.com/i9/forms/I9-01ABC", nil)

	assert.NotContains(t, body, "Please complete it by")
}

func TestReverificationEmail(t *testing.T) {
	subject, body := ReverificationEmail("https://app.example.com/i9/forms/I9-01ABC")

	assert.Equal(t, "Work authorization reverification required", subject)
	assert.Contains(t, body, "https://app.example.com/i9/forms/I9-01ABC")
}
