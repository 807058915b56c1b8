package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/clearhire/clearhire-api/internal/middleware"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type TodoHandler struct {
	todoService TodoServiceInterface
}

func NewTodoHandler(todoService TodoServiceInterface) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) List(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}
	userID := middleware.GetUserID(c)

	todos, err := h.todoService.List(context.Background(), teamID, userID)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]dto.TodoResponse, len(todos))
	for i, todo := range todos {
		out[i] = todoResponse(todo)
	}
	ok(c, http.StatusOK, out)
}

func (h *TodoHandler) Create(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}
	userID := middleware.GetUserID(c)

	var req dto.CreateTodoRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	todo, err := h.todoService.Create(context.Background(), teamID, userID, req.Title)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, todoResponse(todo))
}

func (h *TodoHandler) Get(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}
	todoID, okID := paramUUID(c, "todoId")
	if !okID {
		return
	}
	userID := middleware.GetUserID(c)

	todo, err := h.todoService.Get(context.Background(), teamID, userID, todoID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, todoResponse(todo))
}

func (h *TodoHandler) Update(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}
	todoID, okID := paramUUID(c, "todoId")
	if !okID {
		return
	}
	userID := middleware.GetUserID(c)

	var req dto.UpdateTodoRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	todo, err := h.todoService.Update(context.Background(), teamID, userID, todoID, req.Title)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, todoResponse(todo))
}

func (h *TodoHandler) Delete(c *drift.Context) {
	teamID, okID := paramUUID(c, "teamId")
	if !okID {
		return
	}
	todoID, okID := paramUUID(c, "todoId")
	if !okID {
		return
	}
	userID := middleware.GetUserID(c)

	deleted, err := h.todoService.Delete(context.Background(), teamID, userID, todoID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, dto.DeletedResponse{Deleted: deleted})
}

func todoResponse(todo *models.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:        todo.ID,
		TeamID:    todo.TeamID,
		Title:     todo.Title,
		CreatedAt: todo.CreatedAt.Format(time.RFC3339),
		UpdatedAt: todo.UpdatedAt.Format(time.RFC3339),
	}
}
