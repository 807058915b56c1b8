package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/clearhire/clearhire-api/internal/middleware"
	"github.com/clearhire/clearhire-api/internal/services"
	"github.com/clearhire/clearhire-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type BillingHandler struct {
	billingService BillingServiceInterface
}

func NewBillingHandler(billingService BillingServiceInterface) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

func (h *BillingHandler) Checkout(c *drift.Context) {
	userID := middleware.GetUserID(c)

	var req dto.CheckoutRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	url, err := h.billingService.CreateCheckoutSession(context.Background(), userID, req.PriceID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, dto.SessionURLResponse{URL: url})
}

func (h *BillingHandler) Portal(c *drift.Context) {
	userID := middleware.GetUserID(c)

	url, err := h.billingService.CreatePortalSession(context.Background(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, dto.SessionURLResponse{URL: url})
}

// Webhook receives Stripe event deliveries. The route is registered
// outside the body-parsing chain: signature verification needs the raw
// bytes exactly as Stripe sent them.
func (h *BillingHandler) Webhook(c *drift.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.billingService.HandleWebhook(context.Background(), payload, signature); err != nil {
		if errors.Is(err, services.ErrBadSignature) {
			badRequest(c, dto.FieldError{Param: "signature", Type: "invalid"})
			return
		}
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, map[string]bool{"received": true})
}
