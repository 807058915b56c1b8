package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is the snapshot of a Stripe subscription mirrored onto the
// user. It is only ever written from re-fetched Stripe state, never from a
// webhook payload body.
type Subscription struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Status    string `json:"status"`
}

type User struct {
	ID           uuid.UUID     `json:"id"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	CustomerID   *string       `json:"customer_id,omitempty"`
	Subscription *Subscription `json:"subscription,omitempty"`
	// TeamIDs is the legacy denormalized team list, dual-written alongside
	// the members table. Consistency between the two is assumed, not
	// enforced.
	TeamIDs     []string  `json:"team_ids"`
	FirstSignIn time.Time `json:"first_sign_in"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) Table() string { return "users" }

func (u *User) Key() map[string]any {
	return map[string]any{"id": u.ID}
}

func (u *User) Record() map[string]any {
	rec := map[string]any{
		"id":                  u.ID,
		"email":               u.Email,
		"name":                u.Name,
		"customer_id":         u.CustomerID,
		"subscription_id":     nil,
		"product_id":          nil,
		"subscription_status": nil,
		"team_ids":            u.TeamIDs,
		"first_sign_in":       u.FirstSignIn,
		"created_at":          u.CreatedAt,
		"updated_at":          u.UpdatedAt,
	}
	if u.Subscription != nil {
		rec["subscription_id"] = u.Subscription.ID
		rec["product_id"] = u.Subscription.ProductID
		rec["subscription_status"] = u.Subscription.Status
	}
	return rec
}

func UserFromRecord(rec map[string]any) (*User, error) {
	id, err := recordUUID(rec, "id")
	if err != nil {
		return nil, err
	}
	user := &User{
		ID:          id,
		Email:       recordString(rec, "email"),
		Name:        recordString(rec, "name"),
		CustomerID:  recordStringPtr(rec, "customer_id"),
		TeamIDs:     recordStringSlice(rec, "team_ids"),
		FirstSignIn: recordTime(rec, "first_sign_in"),
		CreatedAt:   recordTime(rec, "created_at"),
		UpdatedAt:   recordTime(rec, "updated_at"),
	}
	if subID := recordStringPtr(rec, "subscription_id"); subID != nil {
		user.Subscription = &Subscription{
			ID:        *subID,
			ProductID: recordString(rec, "product_id"),
			Status:    recordString(rec, "subscription_status"),
		}
	}
	return user, nil
}
