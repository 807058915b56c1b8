package handlers

import (
	"context"
	"net/http"

	"github.com/clearhire/clearhire-api/internal/middleware"
	"github.com/clearhire/clearhire-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type UserHandler struct {
	userService    UserServiceInterface
	billingService BillingServiceInterface
}

func NewUserHandler(userService UserServiceInterface, billingService BillingServiceInterface) *UserHandler {
	return &UserHandler{
		userService:    userService,
		billingService: billingService,
	}
}

// Profile returns the caller's account, provisioning it (with a default
// team) on first sign-in.
func (h *UserHandler) Profile(c *drift.Context) {
	userID := middleware.GetUserID(c)
	email := middleware.GetUserEmail(c)

	user, err := h.userService.GetOrProvision(context.Background(), userID, email)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		FirstSignIn: user.FirstSignIn,
	})
}

// Settings returns the account, its teams with the caller's role in
// each, and the billing plan resolved from the subscription snapshot.
func (h *UserHandler) Settings(c *drift.Context) {
	userID := middleware.GetUserID(c)
	email := middleware.GetUserEmail(c)

	user, err := h.userService.GetOrProvision(context.Background(), userID, email)
	if err != nil {
		fail(c, err)
		return
	}

	teams, roles, err := h.userService.TeamsOf(context.Background(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	teamResponses := make([]dto.TeamResponse, len(teams))
	for i, team := range teams {
		teamResponses[i] = dto.TeamResponse{
			ID:      team.ID,
			Name:    team.Name,
			OwnerID: team.OwnerID,
		}
	}

	ok(c, http.StatusOK, dto.SettingsResponse{
		User: dto.UserResponse{
			ID:          user.ID,
			Email:       user.Email,
			Name:        user.Name,
			FirstSignIn: user.FirstSignIn,
		},
		Teams: teamResponses,
		Roles: roles,
		Plan:  h.billingService.ResolvePlan(user),
	})
}
