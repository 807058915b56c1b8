package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clearhire/clearhire-api/internal/apperr"
	"github.com/clearhire/clearhire-api/internal/middleware"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/pkg/dto"
	"github.com/clearhire/clearhire-api/tests/testutil"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTeamHandler(t *testing.T, userID uuid.UUID, email string) (*testutil.MockTeamService, http.Handler) {
	t.Helper()

	mockTeamService := new(testutil.MockTeamService)
	handler := NewTeamHandler(mockTeamService)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(&testutil.StaticVerifier{UserID: userID, Email: email}))
	app.Get("/team/:teamId", handler.Get)
	app.Put("/team/:teamId", handler.Rename)
	app.Get("/team/:teamId/members", handler.Members)
	app.Post("/team/:teamId/members", handler.Invite)
	app.Post("/team/:teamId/join", handler.Join)

	return mockTeamService, app
}

func TestTeamHandler_Join(t *testing.T) {
	userID := uuid.New()
	email := "joiner@example.com"
	teamID := uuid.New()
	mockTeamService, app := setupTeamHandler(t, userID, email)

	member := &models.Member{
		MemberKey: userID.String(),
		TeamID:    teamID,
		Email:     email,
		Role:      models.RoleReadOnly,
		Status:    models.MemberStatusActive,
		UserID:    &userID,
	}
	mockTeamService.On("Join", mock.Anything, teamID, "invite-code", userID, email).Return(member, nil)

	body := `{"code":"invite-code"}`
	req := httptest.NewRequest(http.MethodPost, "/team/"+teamID.String()+"/join", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Contains(t, rec.Body.String(), models.MemberStatusActive)

	mockTeamService.AssertExpectations(t)
}

func TestTeamHandler_Join_IncorrectCode(t *testing.T) {
	userID := uuid.New()
	email := "joiner@example.com"
	teamID := uuid.New()
	mockTeamService, app := setupTeamHandler(t, userID, email)

	mockTeamService.On("Join", mock.Anything, teamID, "stale-code", userID, email).
		Return(nil, apperr.New(apperr.CodeIncorrectCode))

	body := `{"code":"stale-code"}`
	req := httptest.NewRequest(http.MethodPost, "/team/"+teamID.String()+"/join", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "INCORRECT_CODE", response.Errors[0].Param)

	mockTeamService.AssertExpectations(t)
}

func TestTeamHandler_Join_MissingCode(t *testing.T) {
	userID := uuid.New()
	teamID := uuid.New()
	mockTeamService, app := setupTeamHandler(t, userID, "joiner@example.com")

	req := httptest.NewRequest(http.MethodPost, "/team/"+teamID.String()+"/join", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "code", response.Errors[0].Param)
	assert.Equal(t, "required", response.Errors[0].Type)

	mockTeamService.AssertNotCalled(t, "Join")
}

func TestTeamHandler_Members_NotMember(t *testing.T) {
	userID := uuid.New()
	teamID := uuid.New()
	mockTeamService, app := setupTeamHandler(t, userID, "outsider@example.com")

	mockTeamService.On("Members", mock.Anything, teamID, userID).
		Return(nil, apperr.New(apperr.CodeNotMember))

	req := httptest.NewRequest(http.MethodGet, "/team/"+teamID.String()+"/members", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_MEMBER")

	mockTeamService.AssertExpectations(t)
}

func TestTeamHandler_Get_InvalidTeamID(t *testing.T) {
	userID := uuid.New()
	mockTeamService, app := setupTeamHandler(t, userID, "user@example.com")

	req := httptest.NewRequest(http.MethodGet, "/team/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockTeamService.AssertNotCalled(t, "Get")
}

func TestTeamHandler_Invite_RequiresAuth(t *testing.T) {
	teamID := uuid.New()
	_, app := setupTeamHandler(t, uuid.New(), "user@example.com")

	body := `{"email":"new@example.com","role":"ADMIN"}`
	req := httptest.NewRequest(http.MethodPost, "/team/"+teamID.String()+"/members", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_HEADER")
}
