package services

import (
	"context"
	"time"

	"github.com/clearhire/clearhire-api/internal/apperr"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/internal/repository"
	"github.com/google/uuid"
)

// TodoService manages the per-user task list inside a team. Every
// operation checks the caller holds an ACTIVE membership first.
type TodoService struct {
	todos   *repository.TodoRepository
	members *repository.MemberRepository
}

func NewTodoService(todos *repository.TodoRepository, members *repository.MemberRepository) *TodoService {
	return &TodoService{todos: todos, members: members}
}

func (s *TodoService) guard(ctx context.Context, teamID, userID uuid.UUID) error {
	member, err := s.members.Get(ctx, teamID, userID.String())
	if err != nil {
		return err
	}
	if member == nil || member.Status != models.MemberStatusActive {
		return apperr.New(apperr.CodeNotMember)
	}
	return nil
}

func (s *TodoService) List(ctx context.Context, teamID, userID uuid.UUID) ([]*models.Todo, error) {
	if err := s.guard(ctx, teamID, userID); err != nil {
		return nil, err
	}
	return s.todos.FindAllByTeamAndUser(ctx, teamID, userID)
}

func (s *TodoService) Create(ctx context.Context, teamID, userID uuid.UUID, title string) (*models.Todo, error) {
	if err := s.guard(ctx, teamID, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	todo := &models.Todo{
		TeamID:    teamID,
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Get(ctx context.Context, teamID, userID, todoID uuid.UUID) (*models.Todo, error) {
	if err := s.guard(ctx, teamID, userID); err != nil {
		return nil, err
	}
	todo, err := s.todos.Get(ctx, teamID, todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil || todo.UserID != userID {
		return nil, apperr.New(apperr.CodeIncorrectID)
	}
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, teamID, userID, todoID uuid.UUID, title string) (*models.Todo, error) {
	todo, err := s.Get(ctx, teamID, userID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Title = title
	todo.UpdatedAt = time.Now().UTC()
	ok, err := s.todos.Update(ctx, todo)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.New(apperr.CodeIncorrectID)
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, teamID, userID, todoID uuid.UUID) (bool, error) {
	if _, err := s.Get(ctx, teamID, userID, todoID); err != nil {
		return false, err
	}
	return s.todos.Delete(ctx, teamID, todoID)
}
