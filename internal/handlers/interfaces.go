package handlers

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/internal/services"
	"github.com/google/uuid"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	GetOrProvision(ctx context.Context, id uuid.UUID, email string) (*models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	TeamsOf(ctx context.Context, userID uuid.UUID) ([]*models.Team, []string, error)
}

// TeamServiceInterface defines the methods used by handlers from TeamService
type TeamServiceInterface interface {
	Get(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
	Rename(ctx context.Context, teamID uuid.UUID, name string) error
	Delete(ctx context.Context, teamID uuid.UUID) (bool, error)
	Members(ctx context.Context, teamID, requesterID uuid.UUID) ([]*models.Member, error)
	Invite(ctx context.Context, teamID, inviterID uuid.UUID, email, role string) (*models.Member, error)
	Join(ctx context.Context, teamID uuid.UUID, code string, userID uuid.UUID, email string) (*models.Member, error)
	RemoveMember(ctx context.Context, teamID uuid.UUID, memberKey string) error
	UpdateRole(ctx context.Context, teamID uuid.UUID, memberKey, role string) (bool, error)
}

// TodoServiceInterface defines the methods used by handlers from TodoService
type TodoServiceInterface interface {
	List(ctx context.Context, teamID, userID uuid.UUID) ([]*models.Todo, error)
	Create(ctx context.Context, teamID, userID uuid.UUID, title string) (*models.Todo, error)
	Get(ctx context.Context, teamID, userID, todoID uuid.UUID) (*models.Todo, error)
	Update(ctx context.Context, teamID, userID, todoID uuid.UUID, title string) (*models.Todo, error)
	Delete(ctx context.Context, teamID, userID, todoID uuid.UUID) (bool, error)
}

// BillingServiceInterface defines the methods used by handlers from BillingService
type BillingServiceInterface interface {
	ResolvePlan(user *models.User) services.Plan
	CreateCheckoutSession(ctx context.Context, userID uuid.UUID, priceID string) (string, error)
	CreatePortalSession(ctx context.Context, userID uuid.UUID) (string, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// I9ServiceInterface defines the methods used by handlers from I9Service
type I9ServiceInterface interface {
	CreateI9User(ctx context.Context, email, firstName, lastName string) (*models.I9User, error)
	Initiate(ctx context.Context, i9UserID uuid.UUID, initiatedBy string, dueDate *time.Time, employeeData json.RawMessage) (*models.I9Form, error)
	Form(ctx context.Context, formID string) (*models.I9Form, error)
	Initiation(ctx context.Context, formID string) (*models.InitiationMetadata, error)
	RecordDocuments(ctx context.Context, formID, actor string, inputs []services.DocumentInput) ([]*models.I9Document, error)
	Documents(ctx context.Context, formID string) ([]*models.I9Document, error)
	SignSection2(ctx context.Context, formID string, in services.Section2Input) (*models.I9Section2, error)
	Section2(ctx context.Context, formID string) (*models.I9Section2, error)
	Reverify(ctx context.Context, formID, actor string, in services.ReverificationInput) (*models.I9Reverification, error)
	Reverifications(ctx context.Context, formID string) ([]*models.I9Reverification, error)
	AttachTranslator(ctx context.Context, formID string, in services.TranslatorInput) (*models.Translator, error)
	Translators(ctx context.Context, formID string) ([]*models.Translator, error)
	SendFormEmail(ctx context.Context, formID string) error
	AuditTrail(ctx context.Context, formID string) ([]*models.AuditEntry, error)
}

// NotificationServiceInterface defines the methods used by handlers from NotificationService
type NotificationServiceInterface interface {
	Send(ctx context.Context, recipient, subject, template string, formID *string, body string) error
	History(ctx context.Context, formID string) ([]*models.NotificationLog, error)
}

// UploadServiceInterface defines the methods used by handlers from UploadService
type UploadServiceInterface interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}
