package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clearhire/clearhire-api/internal/middleware"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/internal/services"
	"github.com/clearhire/clearhire-api/pkg/dto"
	"github.com/clearhire/clearhire-api/tests/testutil"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Profile(t *testing.T) {
	mockUserService := new(testutil.MockUserService)
	mockBillingService := new(testutil.MockBillingService)
	handler := NewUserHandler(mockUserService, mockBillingService)

	userID := uuid.New()
	email := "test@example.com"
	user := &models.User{
		ID:          userID,
		Email:       email,
		Name:        "test",
		FirstSignIn: time.Now(),
	}

	mockUserService.On("GetOrProvision", mock.Anything, userID, email).Return(user, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(&testutil.StaticVerifier{UserID: userID, Email: email}))
	app.Get("/users/me", handler.Profile)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Empty(t, response.Errors)

	mockUserService.AssertExpectations(t)
}

func TestUserHandler_Settings_ResolvesPlan(t *testing.T) {
	mockUserService := new(testutil.MockUserService)
	mockBillingService := new(testutil.MockBillingService)
	handler := NewUserHandler(mockUserService, mockBillingService)

	userID := uuid.New()
	email := "test@example.com"
	teamID := uuid.New()
	user := &models.User{ID: userID, Email: email, Name: "test"}

	mockUserService.On("GetOrProvision", mock.Anything, userID, email).Return(user, nil)
	mockUserService.On("TeamsOf", mock.Anything, userID).Return(
		[]*models.Team{{ID: teamID, Name: "Acme", OwnerID: userID}},
		[]string{models.RoleOwner},
		nil,
	)
	mockBillingService.On("ResolvePlan", user).Return(services.FreePlan)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(&testutil.StaticVerifier{UserID: userID, Email: email}))
	app.Get("/users/me/settings", handler.Settings)

	req := httptest.NewRequest(http.MethodGet, "/users/me/settings", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Free"`)
	assert.Contains(t, rec.Body.String(), teamID.String())

	mockUserService.AssertExpectations(t)
	mockBillingService.AssertExpectations(t)
}
