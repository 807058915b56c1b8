// Package testutil provides shared mocks and fixtures for handler and
// integration tests.
package testutil

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// StaticVerifier satisfies middleware.TokenVerifier with fixed claims,
// so handler tests don't need a real identity provider.
type StaticVerifier struct {
	UserID uuid.UUID
	Email  string
}

func (v *StaticVerifier) Verify(string) (*services.IdentityClaims, error) {
	claims := &services.IdentityClaims{Email: v.Email}
	claims.Subject = v.UserID.String()
	return claims, nil
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetOrProvision(ctx context.Context, id uuid.UUID, email string) (*models.User, error) {
	args := m.Called(ctx, id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) TeamsOf(ctx context.Context, userID uuid.UUID) ([]*models.Team, []string, error) {
	args := m.Called(ctx, userID)
	teams, _ := args.Get(0).([]*models.Team)
	roles, _ := args.Get(1).([]string)
	return teams, roles, args.Error(2)
}

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) Get(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamService) Rename(ctx context.Context, teamID uuid.UUID, name string) error {
	return m.Called(ctx, teamID, name).Error(0)
}

func (m *MockTeamService) Delete(ctx context.Context, teamID uuid.UUID) (bool, error) {
	args := m.Called(ctx, teamID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTeamService) Members(ctx context.Context, teamID, requesterID uuid.UUID) ([]*models.Member, error) {
	args := m.Called(ctx, teamID, requesterID)
	members, _ := args.Get(0).([]*models.Member)
	return members, args.Error(1)
}

func (m *MockTeamService) Invite(ctx context.Context, teamID, inviterID uuid.UUID, email, role string) (*models.Member, error) {
	args := m.Called(ctx, teamID, inviterID, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockTeamService) Join(ctx context.Context, teamID uuid.UUID, code string, userID uuid.UUID, email string) (*models.Member, error) {
	args := m.Called(ctx, teamID, code, userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockTeamService) RemoveMember(ctx context.Context, teamID uuid.UUID, memberKey string) error {
	return m.Called(ctx, teamID, memberKey).Error(0)
}

func (m *MockTeamService) UpdateRole(ctx context.Context, teamID uuid.UUID, memberKey, role string) (bool, error) {
	args := m.Called(ctx, teamID, memberKey, role)
	return args.Bool(0), args.Error(1)
}

type MockTodoService struct {
	mock.Mock
}

func (m *MockTodoService) List(ctx context.Context, teamID, userID uuid.UUID) ([]*models.Todo, error) {
	args := m.Called(ctx, teamID, userID)
	todos, _ := args.Get(0).([]*models.Todo)
	return todos, args.Error(1)
}

func (m *MockTodoService) Create(ctx context.Context, teamID, userID uuid.UUID, title string) (*models.Todo, error) {
	args := m.Called(ctx, teamID, userID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (m *MockTodoService) Get(ctx context.Context, teamID, userID, todoID uuid.UUID) (*models.Todo, error) {
	args := m.Called(ctx, teamID, userID, todoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (m *MockTodoService) Update(ctx context.Context, teamID, userID, todoID uuid.UUID, title string) (*models.Todo, error) {
	args := m.Called(ctx, teamID, userID, todoID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (m *MockTodoService) Delete(ctx context.Context, teamID, userID, todoID uuid.UUID) (bool, error) {
	args := m.Called(ctx, teamID, userID, todoID)
	return args.Bool(0), args.Error(1)
}

type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) ResolvePlan(user *models.User) services.Plan {
	args := m.Called(user)
	return args.Get(0).(services.Plan)
}

func (m *MockBillingService) CreateCheckoutSession(ctx context.Context, userID uuid.UUID, priceID string) (string, error) {
	args := m.Called(ctx, userID, priceID)
	return args.String(0), args.Error(1)
}

func (m *MockBillingService) CreatePortalSession(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockBillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return m.Called(ctx, payload, signature).Error(0)
}

type MockI9Service struct {
	mock.Mock
}

func (m *MockI9Service) CreateI9User(ctx context.Context, email, firstName, lastName string) (*models.I9User, error) {
	args := m.Called(ctx, email, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.I9User), args.Error(1)
}

func (m *MockI9Service) Initiate(ctx context.Context, i9UserID uuid.UUID, initiatedBy string, dueDate *time.Time, employeeData json.RawMessage) (*models.I9Form, error) {
	args := m.Called(ctx, i9UserID, initiatedBy, dueDate, employeeData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.I9Form), args.Error(1)
}

func (m *MockI9Service) Form(ctx context.Context, formID string) (*models.I9Form, error) {
	args := m.Called(ctx, formID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.I9Form), args.Error(1)
}

func (m *MockI9Service) Initiation(ctx context.Context, formID string) (*models.InitiationMetadata, error) {
	args := m.Called(ctx, formID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InitiationMetadata), args.Error(1)
}

func (m *MockI9Service) RecordDocuments(ctx context.Context, formID, actor string, inputs []services.DocumentInput) ([]*models.I9Document, error) {
	args := m.Called(ctx, formID, actor, inputs)
	docs, _ := args.Get(0).([]*models.I9Document)
	return docs, args.Error(1)
}

func (m *MockI9Service) Documents(ctx context.Context, formID string) ([]*models.I9Document, error) {
	args := m.Called(ctx, formID)
	docs, _ := args.Get(0).([]*models.I9Document)
	return docs, args.Error(1)
}

func (m *MockI9Service) SignSection2(ctx context.Context, formID string, in services.Section2Input) (*models.I9Section2, error) {
	args := m.Called(ctx, formID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.I9Section2), args.Error(1)
}

func (m *MockI9Service) Section2(ctx context.Context, formID string) (*models.I9Section2, error) {
	args := m.Called(ctx, formID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.I9Section2), args.Error(1)
}

func (m *MockI9Service) Reverify(ctx context.Context, formID, actor string, in services.ReverificationInput) (*models.I9Reverification, error) {
	args := m.Called(ctx, formID, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.I9Reverification), args.Error(1)
}

func (m *MockI9Service) Reverifications(ctx context.Context, formID string) ([]*models.I9Reverification, error) {
	args := m.Called(ctx, formID)
	revs, _ := args.Get(0).([]*models.I9Reverification)
	return revs, args.Error(1)
}

func (m *MockI9Service) AttachTranslator(ctx context.Context, formID string, in services.TranslatorInput) (*models.Translator, error) {
	args := m.Called(ctx, formID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Translator), args.Error(1)
}

func (m *MockI9Service) Translators(ctx context.Context, formID string) ([]*models.Translator, error) {
	args := m.Called(ctx, formID)
	translators, _ := args.Get(0).([]*models.Translator)
	return translators, args.Error(1)
}

func (m *MockI9Service) SendFormEmail(ctx context.Context, formID string) error {
	return m.Called(ctx, formID).Error(0)
}

func (m *MockI9Service) AuditTrail(ctx context.Context, formID string) ([]*models.AuditEntry, error) {
	args := m.Called(ctx, formID)
	entries, _ := args.Get(0).([]*models.AuditEntry)
	return entries, args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Send(ctx context.Context, recipient, subject, template string, formID *string, body string) error {
	args := m.Called(ctx, recipient, subject, template, formID, body)
	return args.Error(0)
}

func (m *MockNotificationService) History(ctx context.Context, formID string) ([]*models.NotificationLog, error) {
	args := m.Called(ctx, formID)
	entries, _ := args.Get(0).([]*models.NotificationLog)
	return entries, args.Error(1)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, filename, contentType, body)
	return args.String(0), args.Error(1)
}
