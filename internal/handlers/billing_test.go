package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clearhire/clearhire-api/internal/middleware"
	"github.com/clearhire/clearhire-api/internal/services"
	"github.com/clearhire/clearhire-api/tests/testutil"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupBillingHandler(t *testing.T, userID uuid.UUID) (*testutil.MockBillingService, http.Handler) {
	t.Helper()

	mockBillingService := new(testutil.MockBillingService)
	handler := NewBillingHandler(mockBillingService)

	app := drift.New()
	// Webhook skips the body parser so the raw payload survives for
	// signature verification, same as the production route table.
	app.Post("/billing/webhook", handler.Webhook)

	api := app.Group("")
	api.Use(driftmw.BodyParser())
	api.Use(middleware.Auth(&testutil.StaticVerifier{UserID: userID, Email: "payer@example.com"}))
	api.Post("/billing/checkout", handler.Checkout)
	api.Post("/billing/portal", handler.Portal)

	return mockBillingService, app
}

func TestBillingHandler_Checkout(t *testing.T) {
	userID := uuid.New()
	mockBillingService, app := setupBillingHandler(t, userID)

	mockBillingService.On("CreateCheckoutSession", mock.Anything, userID, "price_starter_test").
		Return("https://checkout.stripe.com/c/pay/cs_test_123", nil)

	body := `{"price_id":"price_starter_test"}`
	req := httptest.NewRequest(http.MethodPost, "/billing/checkout", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cs_test_123")

	mockBillingService.AssertExpectations(t)
}

func TestBillingHandler_Checkout_MissingPriceID(t *testing.T) {
	userID := uuid.New()
	mockBillingService, app := setupBillingHandler(t, userID)

	req := httptest.NewRequest(http.MethodPost, "/billing/checkout", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockBillingService.AssertNotCalled(t, "CreateCheckoutSession")
}

func TestBillingHandler_Webhook_BadSignature(t *testing.T) {
	mockBillingService, app := setupBillingHandler(t, uuid.New())

	mockBillingService.On("HandleWebhook", mock.Anything, mock.Anything, "t=1,v1=bogus").
		Return(services.ErrBadSignature)

	req := httptest.NewRequest(http.MethodPost, "/billing/webhook", strings.NewReader(`{"type":"invoice.paid"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=bogus")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "signature")

	mockBillingService.AssertExpectations(t)
}

func TestBillingHandler_Webhook_UnhandledEventSurfacesError(t *testing.T) {
	mockBillingService, app := setupBillingHandler(t, uuid.New())

	mockBillingService.On("HandleWebhook", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New(`unhandled webhook event type "invoice.paid"`))

	req := httptest.NewRequest(http.MethodPost, "/billing/webhook", strings.NewReader(`{"type":"invoice.paid"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	mockBillingService.AssertExpectations(t)
}

func TestBillingHandler_Webhook_Received(t *testing.T) {
	mockBillingService, app := setupBillingHandler(t, uuid.New())

	mockBillingService.On("HandleWebhook", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/billing/webhook", strings.NewReader(`{"type":"customer.subscription.updated"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"received":true`)

	mockBillingService.AssertExpectations(t)
}
