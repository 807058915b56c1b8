package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/clearhire/clearhire-api/internal/config"
	"github.com/clearhire/clearhire-api/internal/logger"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/internal/repository"
	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Plan is a billing tier. Plans are resolved from the product id stored
// on the user's subscription snapshot; anything unrecognized falls back
// to the free plan.
type Plan struct {
	Name      string `json:"name"`
	ProductID string `json:"productId"`
	PriceID   string `json:"priceId"`
	MaxSeats  int    `json:"maxSeats"`
	MaxForms  int    `json:"maxForms"`
}

var FreePlan = Plan{
	Name:     "Free",
	MaxSeats: 3,
	MaxForms: 5,
}

var livePlans = []Plan{
	{Name: "Starter", ProductID: "prod_starter_live", PriceID: "price_starter_live", MaxSeats: 10, MaxForms: 50},
	{Name: "Business", ProductID: "prod_business_live", PriceID: "price_business_live", MaxSeats: 50, MaxForms: 500},
}

var testPlans = []Plan{
	{Name: "Starter", ProductID: "prod_starter_test", PriceID: "price_starter_test", MaxSeats: 10, MaxForms: 50},
	{Name: "Business", ProductID: "prod_business_test", PriceID: "price_business_test", MaxSeats: 50, MaxForms: 500},
}

// PlansForEnv returns the paid plan table for the given environment.
// Test-mode Stripe products carry different ids than live-mode ones.
func PlansForEnv(env string) []Plan {
	if env == "production" {
		return livePlans
	}
	return testPlans
}

// ErrBadSignature marks a webhook payload whose Stripe-Signature header
// did not verify. Handlers map it to 400 instead of 500.
var ErrBadSignature = errors.New("webhook signature verification failed")

// StripeAPI is the surface of the Stripe client the billing service
// uses. Tests substitute a mock.
type StripeAPI interface {
	GetSubscription(id string) (*stripe.Subscription, error)
	GetCustomer(id string) (*stripe.Customer, error)
	CreateCustomer(email, name string) (*stripe.Customer, error)
	CreateCheckoutSession(customerID, priceID, successURL, cancelURL string) (*stripe.CheckoutSession, error)
	CreatePortalSession(customerID, returnURL string) (*stripe.BillingPortalSession, error)
}

type stripeClient struct {
	api *client.API
}

// NewStripeClient builds the real Stripe-backed implementation of
// StripeAPI.
func NewStripeClient(secretKey string) StripeAPI {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeClient{api: api}
}

func (c *stripeClient) GetSubscription(id string) (*stripe.Subscription, error) {
	return c.api.Subscriptions.Get(id, nil)
}

func (c *stripeClient) GetCustomer(id string) (*stripe.Customer, error) {
	return c.api.Customers.Get(id, nil)
}

func (c *stripeClient) CreateCustomer(email, name string) (*stripe.Customer, error) {
	return c.api.Customers.New(&stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	})
}

func (c *stripeClient) CreateCheckoutSession(customerID, priceID, successURL, cancelURL string) (*stripe.CheckoutSession, error) {
	return c.api.CheckoutSessions.New(&stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	})
}

func (c *stripeClient) CreatePortalSession(customerID, returnURL string) (*stripe.BillingPortalSession, error) {
	return c.api.BillingPortalSessions.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	})
}

type BillingService struct {
	stripe StripeAPI
	users  *repository.UserRepository
	teams  *TeamService
	cfg    config.StripeConfig
	env    string
	log    *logger.Logger
}

func NewBillingService(api StripeAPI, users *repository.UserRepository, teams *TeamService, cfg config.StripeConfig, env string, log *logger.Logger) *BillingService {
	return &BillingService{stripe: api, users: users, teams: teams, cfg: cfg, env: env, log: log}
}

// ResolvePlan maps the subscription snapshot stored on the user to a
// plan. No subscription, a non-active status, or a product id outside
// the plan table all resolve to the free plan.
func (s *BillingService) ResolvePlan(user *models.User) Plan {
	sub := user.Subscription
	if sub == nil {
		return FreePlan
	}
	if sub.Status != string(stripe.SubscriptionStatusActive) {
		return FreePlan
	}
	for _, plan := range PlansForEnv(s.env) {
		if plan.ProductID == sub.ProductID {
			return plan
		}
	}
	return FreePlan
}

// CreateCheckoutSession returns a Stripe Checkout URL for the given
// price. The Stripe customer is created lazily on first checkout and
// its id persisted on the user.
func (s *BillingService) CreateCheckoutSession(ctx context.Context, userID uuid.UUID, priceID string) (string, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("user %s not found", userID)
	}

	customerID, err := s.ensureCustomer(ctx, user)
	if err != nil {
		return "", err
	}

	session, err := s.stripe.CreateCheckoutSession(customerID, priceID, s.cfg.SuccessURL, s.cfg.CancelURL)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session.URL, nil
}

// CreatePortalSession returns a Stripe billing portal URL for the user.
func (s *BillingService) CreatePortalSession(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("user %s not found", userID)
	}

	customerID, err := s.ensureCustomer(ctx, user)
	if err != nil {
		return "", err
	}

	session, err := s.stripe.CreatePortalSession(customerID, s.cfg.PortalReturnURL)
	if err != nil {
		return "", fmt.Errorf("failed to create portal session: %w", err)
	}
	return session.URL, nil
}

func (s *BillingService) ensureCustomer(ctx context.Context, user *models.User) (string, error) {
	if user.CustomerID != nil && *user.CustomerID != "" {
		return *user.CustomerID, nil
	}

	customer, err := s.stripe.CreateCustomer(user.Email, user.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}
	if _, err := s.users.SetCustomerID(ctx, user.ID, customer.ID); err != nil {
		return "", err
	}
	return customer.ID, nil
}

// HandleWebhook verifies and processes a Stripe webhook delivery. The
// event payload is treated only as a pointer: the subscription is always
// re-fetched from Stripe before any local state changes, so a replayed
// or out-of-order delivery converges on current truth. Unhandled event
// types are an error, not a silent ack, so a misconfigured endpoint
// surfaces immediately.
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.WebhookSecret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}

	s.log.Infow("stripe webhook received", "type", event.Type, "id", event.ID)

	switch string(event.Type) {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("failed to decode checkout session: %w", err)
		}
		if session.Subscription == nil {
			return nil
		}
		return s.syncSubscription(ctx, session.Subscription.ID)

	case "customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("failed to decode subscription: %w", err)
		}
		return s.syncSubscription(ctx, sub.ID)

	default:
		return fmt.Errorf("unhandled webhook event type %q", event.Type)
	}
}

// syncSubscription re-reads the subscription and its customer from
// Stripe and writes the snapshot onto the owning user. A canceled
// subscription clears the snapshot so plan resolution falls back to
// free.
func (s *BillingService) syncSubscription(ctx context.Context, subscriptionID string) error {
	sub, err := s.stripe.GetSubscription(subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription %s: %w", subscriptionID, err)
	}
	if sub.Customer == nil {
		return fmt.Errorf("subscription %s has no customer", subscriptionID)
	}

	user, err := s.users.FindByCustomerID(ctx, sub.Customer.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("no user for stripe customer %s", sub.Customer.ID)
	}

	var snapshot *models.Subscription
	if sub.Status != stripe.SubscriptionStatusCanceled {
		snapshot = &models.Subscription{
			ID:        sub.ID,
			ProductID: subscriptionProductID(sub),
			Status:    string(sub.Status),
		}
	}
	if _, err := s.users.UpdateSubscription(ctx, user.ID, snapshot); err != nil {
		return err
	}

	// The customer record is the source of truth for the billing email;
	// if it drifted from ours, propagate the change.
	customer, err := s.stripe.GetCustomer(sub.Customer.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch customer %s: %w", sub.Customer.ID, err)
	}
	if customer.Email != "" && customer.Email != user.Email {
		if _, err := s.users.UpdateEmail(ctx, user.ID, customer.Email); err != nil {
			return err
		}
		if _, err := s.teams.UpdateEmailAcrossTeams(ctx, user.ID, customer.Email); err != nil {
			return err
		}
	}

	s.log.Infow("subscription synced",
		"subscription_id", sub.ID,
		"customer_id", sub.Customer.ID,
		"status", sub.Status,
	)
	return nil
}

func subscriptionProductID(sub *stripe.Subscription) string {
	if sub.Items == nil || len(sub.Items.Data) == 0 {
		return ""
	}
	item := sub.Items.Data[0]
	if item.Price == nil || item.Price.Product == nil {
		return ""
	}
	return item.Price.Product.ID
}
