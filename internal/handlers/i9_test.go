package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clearhire/clearhire-api/internal/middleware"
	"github.com/clearhire/clearhire-api/pkg/dto"
	"github.com/clearhire/clearhire-api/tests/testutil"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupI9Handler(t *testing.T) (*testutil.MockNotificationService, http.Handler) {
	t.Helper()

	mockI9Service := new(testutil.MockI9Service)
	mockNotificationService := new(testutil.MockNotificationService)
	mockUploadService := new(testutil.MockUploadService)
	handler := NewI9Handler(mockI9Service, mockNotificationService, mockUploadService)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(&testutil.StaticVerifier{UserID: uuid.New(), Email: "hr@example.com"}))
	app.Post("/notifications/send", handler.SendNotification)

	return mockNotificationService, app
}

func TestI9Handler_SendNotification(t *testing.T) {
	mockNotificationService, app := setupI9Handler(t)

	mockNotificationService.On("Send", mock.Anything, "employee@example.com", "Complete your I-9", "i9_request", (*string)(nil), "Please complete section 1.").
		Return(nil)

	body := `{"recipient":"employee@example.com","subject":"Complete your I-9","template":"i9_request","body":"Please complete section 1."}`
	req := httptest.NewRequest(http.MethodPost, "/notifications/send", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Contains(t, rec.Body.String(), `"sent":true`)

	mockNotificationService.AssertExpectations(t)
}

func TestI9Handler_SendNotification_MissingFields(t *testing.T) {
	_, app := setupI9Handler(t)

	req := httptest.NewRequest(http.MethodPost, "/notifications/send", strings.NewReader(`{"recipient":"not-an-email"}`))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	require.Len(t, response.Errors, 3)
	assert.Equal(t, dto.FieldError{Param: "recipient", Type: "invalid"}, response.Errors[0])
	assert.Equal(t, dto.FieldError{Param: "subject", Type: "required"}, response.Errors[1])
	assert.Equal(t, dto.FieldError{Param: "template", Type: "required"}, response.Errors[2])
}

func TestI9Handler_SendNotification_DeliveryError(t *testing.T) {
	mockNotificationService, app := setupI9Handler(t)

	mockNotificationService.On("Send", mock.Anything, "employee@example.com", "Reverify", "i9_reverification", (*string)(nil), "").
		Return(errors.New("smtp unreachable"))

	body := `{"recipient":"employee@example.com","subject":"Reverify","template":"i9_reverification"}`
	req := httptest.NewRequest(http.MethodPost, "/notifications/send", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)

	mockNotificationService.AssertExpectations(t)
}
