package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/clearhire/clearhire-api/internal/config"
	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/logger"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/internal/repository"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test"

type stubStripe struct {
	getSubscription func(id string) (*stripe.Subscription, error)
	getCustomer     func(id string) (*stripe.Customer, error)
	createCustomer  func(email, name string) (*stripe.Customer, error)
	createCheckout  func(customerID, priceID, successURL, cancelURL string) (*stripe.CheckoutSession, error)
	createPortal    func(customerID, returnURL string) (*stripe.BillingPortalSession, error)
}

func (s *stubStripe) GetSubscription(id string) (*stripe.Subscription, error) {
	return s.getSubscription(id)
}

func (s *stubStripe) GetCustomer(id string) (*stripe.Customer, error) {
	return s.getCustomer(id)
}

func (s *stubStripe) CreateCustomer(email, name string) (*stripe.Customer, error) {
	return s.createCustomer(email, name)
}

func (s *stubStripe) CreateCheckoutSession(customerID, priceID, successURL, cancelURL string) (*stripe.CheckoutSession, error) {
	return s.createCheckout(customerID, priceID, successURL, cancelURL)
}

func (s *stubStripe) CreatePortalSession(customerID, returnURL string) (*stripe.BillingPortalSession, error) {
	return s.createPortal(customerID, returnURL)
}

func setupBillingService(t *testing.T, api StripeAPI) (*BillingService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	users := repository.NewUserRepository(db)
	teams := NewTeamService(users, repository.NewTeamRepository(db), repository.NewMemberRepository(db), NewEmailService(config.SMTPConfig{}), logger.Nop())

	cfg := config.StripeConfig{WebhookSecret: testWebhookSecret}
	return NewBillingService(api, users, teams, cfg, "development", logger.Nop()), mock
}

func signPayload(t *testing.T, payload []byte) string {
	t.Helper()
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestResolvePlan(t *testing.T) {
	svc, _ := setupBillingService(t, &stubStripe{})

	tests := []struct {
		name string
		sub  *models.Subscription
		want string
	}{
		{"no subscription", nil, "Free"},
		{"unknown product", &models.Subscription{ID: "sub_1", ProductID: "prod_unknown", Status: "active"}, "Free"},
		{"inactive status", &models.Subscription{ID: "sub_1", ProductID: "prod_starter_test", Status: "past_due"}, "Free"},
		{"active starter", &models.Subscription{ID: "sub_1", ProductID: "prod_starter_test", Status: "active"}, "Starter"},
		{"active business", &models.Subscription{ID: "sub_1", ProductID: "prod_business_test", Status: "active"}, "Business"},
		{"trialing is not entitled", &models.Subscription{ID: "sub_1", ProductID: "prod_business_test", Status: "trialing"}, "Free"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{ID: uuid.New(), Subscription: tt.sub}
			assert.Equal(t, tt.want, svc.ResolvePlan(user).Name)
		})
	}
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	svc, _ := setupBillingService(t, &stubStripe{})

	err := svc.HandleWebhook(context.Background(), []byte(`{}`), "t=1,v1=bogus")

	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestHandleWebhook_UnknownEventType(t *testing.T) {
	svc, _ := setupBillingService(t, &stubStripe{})

	payload := fmt.Appendf(nil, `{"id":"evt_1","api_version":%q,"type":"invoice.paid","data":{"object":{}}}`, stripe.APIVersion)
	err := svc.HandleWebhook(context.Background(), payload, signPayload(t, payload))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unhandled webhook event type")
}

func TestHandleWebhook_SubscriptionUpdated_RefetchesAndSyncs(t *testing.T) {
	userID := uuid.New()
	customerID := "cus_123"

	var fetched bool
	api := &stubStripe{
		getSubscription: func(id string) (*stripe.Subscription, error) {
			fetched = true
			assert.Equal(t, "sub_123", id)
			return &stripe.Subscription{
				ID:       "sub_123",
				Status:   stripe.SubscriptionStatusActive,
				Customer: &stripe.Customer{ID: customerID},
				Items: &stripe.SubscriptionItemList{
					Data: []*stripe.SubscriptionItem{
						{Price: &stripe.Price{Product: &stripe.Product{ID: "prod_starter_test"}}},
					},
				},
			}, nil
		},
		getCustomer: func(id string) (*stripe.Customer, error) {
			return &stripe.Customer{ID: customerID, Email: "owner@acme.test"}, nil
		},
	}

	svc, mock := setupBillingService(t, api)
	now := time.Now()

	userRows := pgxmock.NewRows([]string{
		"id", "email", "name", "customer_id",
		"subscription_id", "product_id", "subscription_status",
		"team_ids", "first_sign_in", "created_at", "updated_at",
	}).AddRow(userID, "owner@acme.test", "owner", customerID, nil, nil, nil, []string{}, now, now, now)

	mock.ExpectQuery(`SELECT \* FROM users WHERE customer_id = \$1`).
		WithArgs(customerID).
		WillReturnRows(userRows)

	mock.ExpectExec(`UPDATE users`).
		WithArgs("sub_123", "prod_starter_test", "active", userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	// The payload body deliberately disagrees with Stripe's current
	// state; the stale status must not be written.
	payload := fmt.Appendf(nil, `{"id":"evt_2","api_version":%q,"type":"customer.subscription.updated","data":{"object":{"id":"sub_123","status":"canceled"}}}`, stripe.APIVersion)
	err := svc.HandleWebhook(context.Background(), payload, signPayload(t, payload))

	require.NoError(t, err)
	assert.True(t, fetched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleWebhook_SubscriptionDeleted_ClearsSnapshot(t *testing.T) {
	userID := uuid.New()
	customerID := "cus_456"

	api := &stubStripe{
		getSubscription: func(id string) (*stripe.Subscription, error) {
			return &stripe.Subscription{
				ID:       "sub_456",
				Status:   stripe.SubscriptionStatusCanceled,
				Customer: &stripe.Customer{ID: customerID},
			}, nil
		},
		getCustomer: func(id string) (*stripe.Customer, error) {
			return &stripe.Customer{ID: customerID, Email: "owner@acme.test"}, nil
		},
	}

	svc, mock := setupBillingService(t, api)
	now := time.Now()

	userRows := pgxmock.NewRows([]string{
		"id", "email", "name", "customer_id",
		"subscription_id", "product_id", "subscription_status",
		"team_ids", "first_sign_in", "created_at", "updated_at",
	}).AddRow(userID, "owner@acme.test", "owner", customerID, "sub_456", "prod_starter_test", "active", []string{}, now, now, now)

	mock.ExpectQuery(`SELECT \* FROM users WHERE customer_id = \$1`).
		WithArgs(customerID).
		WillReturnRows(userRows)

	mock.ExpectExec(`UPDATE users`).
		WithArgs(nil, nil, nil, userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	payload := fmt.Appendf(nil, `{"id":"evt_3","api_version":%q,"type":"customer.subscription.deleted","data":{"object":{"id":"sub_456"}}}`, stripe.APIVersion)
	err := svc.HandleWebhook(context.Background(), payload, signPayload(t, payload))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCheckoutSession_LazyCustomerCreate(t *testing.T) {
	userID := uuid.New()

	api := &stubStripe{
		createCustomer: func(email, name string) (*stripe.Customer, error) {
			return &stripe.Customer{ID: "cus_new"}, nil
		},
		createCheckout: func(customerID, priceID, successURL, cancelURL string) (*stripe.CheckoutSession, error) {
			assert.Equal(t, "cus_new", customerID)
			assert.Equal(t, "price_starter_test", priceID)
			return &stripe.CheckoutSession{URL: "https://checkout.stripe.test/session"}, nil
		},
	}

	svc, mock := setupBillingService(t, api)
	now := time.Now()

	userRows := pgxmock.NewRows([]string{
		"id", "email", "name", "customer_id",
		"subscription_id", "product_id", "subscription_status",
		"team_ids", "first_sign_in", "created_at", "updated_at",
	}).AddRow(userID, "owner@acme.test", "owner", nil, nil, nil, nil, []string{}, now, now, now)

	mock.ExpectQuery(`SELECT \* FROM users WHERE id = \$1`).
		WithArgs(userID).
		WillReturnRows(userRows)

	mock.ExpectExec(`UPDATE users SET customer_id`).
		WithArgs("cus_new", userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	url, err := svc.CreateCheckoutSession(context.Background(), userID, "price_starter_test")

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.test/session", url)
	assert.NoError(t, mock.ExpectationsWereMet())
}
