package handlers

import (
	"context"
	"net/http"

	"github.com/clearhire/clearhire-api/internal/middleware"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type TeamHandler struct {
	teamService TeamServiceInterface
}

func NewTeamHandler(teamService TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) Get(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}

	team, err := h.teamService.Get(context.Background(), teamID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, dto.TeamResponse{ID: team.ID, Name: team.Name, OwnerID: team.OwnerID})
}

func (h *TeamHandler) Rename(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}

	var req dto.RenameTeamRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	if err := h.teamService.Rename(context.Background(), teamID, req.Name); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, dto.UpdatedResponse{Updated: true})
}

func (h *TeamHandler) Delete(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}

	deleted, err := h.teamService.Delete(context.Background(), teamID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, dto.DeletedResponse{Deleted: deleted})
}

func (h *TeamHandler) Members(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}
	userID := middleware.GetUserID(c)

	members, err := h.teamService.Members(context.Background(), teamID, userID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, memberResponses(members))
}

func (h *TeamHandler) Invite(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}
	userID := middleware.GetUserID(c)

	var req dto.InviteMemberRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	member, err := h.teamService.Invite(context.Background(), teamID, userID, req.Email, req.Role)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, memberResponse(member))
}

func (h *TeamHandler) Join(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}
	userID := middleware.GetUserID(c)
	email := middleware.GetUserEmail(c)

	var req dto.JoinTeamRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	member, err := h.teamService.Join(context.Background(), teamID, req.Code, userID, email)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, memberResponse(member))
}

func (h *TeamHandler) RemoveMember(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}
	memberKey := c.Param("memberKey")

	if err := h.teamService.RemoveMember(context.Background(), teamID, memberKey); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, dto.DeletedResponse{Deleted: true})
}

func (h *TeamHandler) UpdateRole(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}
	memberKey := c.Param("memberKey")

	var req dto.UpdateRoleRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	updated, err := h.teamService.UpdateRole(context.Background(), teamID, memberKey, req.Role)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, dto.UpdatedResponse{Updated: updated})
}

func memberResponse(m *models.Member) dto.MemberResponse {
	return dto.MemberResponse{
		TeamID:    m.TeamID,
		MemberKey: m.MemberKey,
		UserID:    m.UserID,
		Email:     m.Email,
		Status:    m.Status,
		Role:      m.Role,
	}
}

func memberResponses(members []*models.Member) []dto.MemberResponse {
	out := make([]dto.MemberResponse, len(members))
	for i, m := range members {
		out[i] = memberResponse(m)
	}
	return out
}
