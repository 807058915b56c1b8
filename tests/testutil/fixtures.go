package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateUser creates a test user with default values
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		ID:      uuid.New(),
		Email:   fmt.Sprintf("user%d@example.com", f.counter),
		Name:    fmt.Sprintf("Test User %d", f.counter),
		TeamIDs: []string{},
	}

	for _, opt := range opts {
		opt(user)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (id, email, name, customer_id, team_ids)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING first_sign_in, created_at, updated_at
	`, user.ID, user.Email, user.Name, user.CustomerID, user.TeamIDs).Scan(
		&user.FirstSignIn, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(*models.User)

// WithEmail sets the user's email
func WithEmail(email string) UserOption {
	return func(u *models.User) {
		u.Email = email
	}
}

// WithCustomerID attaches a Stripe customer id
func WithCustomerID(customerID string) UserOption {
	return func(u *models.User) {
		u.CustomerID = &customerID
	}
}

// CreateTeam creates a test team owned by the given user, with the owner
// enrolled as an ACTIVE member and the team id dual-written to the
// owner's team_ids list.
func (f *Fixtures) CreateTeam(t *testing.T, owner *models.User, opts ...TeamOption) *models.Team {
	t.Helper()
	f.counter++

	team := &models.Team{
		ID:      uuid.New(),
		Name:    fmt.Sprintf("Test Team %d", f.counter),
		OwnerID: owner.ID,
	}

	for _, opt := range opts {
		opt(team)
	}

	ctx := context.Background()
	tx, err := f.db.Pool.Begin(ctx)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO teams (id, name, owner_id)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`, team.ID, team.Name, team.OwnerID).Scan(&team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create team: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO members (team_id, member_key, user_id, email, status, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, team.ID, owner.ID.String(), owner.ID, owner.Email, models.MemberStatusActive, models.RoleOwner)
	if err != nil {
		t.Fatalf("failed to add owner as member: %v", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE users SET team_ids = array_append(team_ids, $1) WHERE id = $2
	`, team.ID.String(), owner.ID)
	if err != nil {
		t.Fatalf("failed to record team on owner: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("failed to commit transaction: %v", err)
	}

	return team
}

// TeamOption configures a test team
type TeamOption func(*models.Team)

// WithTeamName sets the team's name
func WithTeamName(name string) TeamOption {
	return func(t *models.Team) {
		t.Name = name
	}
}

// AddActiveMember enrolls a user as an ACTIVE member of a team
func (f *Fixtures) AddActiveMember(t *testing.T, team *models.Team, user *models.User, role string) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO members (team_id, member_key, user_id, email, status, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (team_id, member_key) DO NOTHING
	`, team.ID, user.ID.String(), user.ID, user.Email, models.MemberStatusActive, role)
	if err != nil {
		t.Fatalf("failed to add team member: %v", err)
	}

	_, err = f.db.Pool.Exec(ctx, `
		UPDATE users SET team_ids = array_append(team_ids, $1) WHERE id = $2
	`, team.ID.String(), user.ID)
	if err != nil {
		t.Fatalf("failed to record team on member: %v", err)
	}
}

// CreateInvite records a PENDING member keyed by an invite code
func (f *Fixtures) CreateInvite(t *testing.T, team *models.Team, email, role, code string) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO members (team_id, member_key, email, status, role)
		VALUES ($1, $2, $3, $4, $5)
	`, team.ID, code, email, models.MemberStatusPending, role)
	if err != nil {
		t.Fatalf("failed to create invite: %v", err)
	}
}

// CreateTodo creates a test todo in a team for the given user
func (f *Fixtures) CreateTodo(t *testing.T, team *models.Team, user *models.User, title string) *models.Todo {
	t.Helper()

	todo := &models.Todo{
		TeamID: team.ID,
		ID:     uuid.New(),
		UserID: user.ID,
		Title:  title,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO todos (team_id, id, user_id, title)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, todo.TeamID, todo.ID, todo.UserID, todo.Title).Scan(&todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	return todo
}

// CreateI9User creates an employment-verification subject
func (f *Fixtures) CreateI9User(t *testing.T) *models.I9User {
	t.Helper()
	f.counter++

	i9User := &models.I9User{
		ID:        uuid.New(),
		Email:     fmt.Sprintf("employee%d@example.com", f.counter),
		FirstName: "Test",
		LastName:  fmt.Sprintf("Employee%d", f.counter),
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO i9_users (id, email, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, i9User.ID, i9User.Email, i9User.FirstName, i9User.LastName).Scan(&i9User.CreatedAt)
	if err != nil {
		t.Fatalf("failed to create i9 user: %v", err)
	}

	return i9User
}

// CreateI9Form creates a form for a subject in the given status
func (f *Fixtures) CreateI9Form(t *testing.T, i9User *models.I9User, status string) *models.I9Form {
	t.Helper()

	form := &models.I9Form{
		ID:       uuid.New(),
		FormID:   "I9-" + ulid.Make().String(),
		I9UserID: i9User.ID,
		Status:   status,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO i9_forms (id, form_id, i9_user_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, form.ID, form.FormID, form.I9UserID, form.Status).Scan(&form.CreatedAt, &form.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create i9 form: %v", err)
	}

	return form
}

// CreateInitiation records initiation metadata for a form
func (f *Fixtures) CreateInitiation(t *testing.T, form *models.I9Form, initiatedBy, employeeEmail string, dueDate *time.Time) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO initiation_metadata (id, form_id, initiated_by, employee_email, due_date)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New(), form.FormID, initiatedBy, employeeEmail, dueDate)
	if err != nil {
		t.Fatalf("failed to create initiation metadata: %v", err)
	}
}
