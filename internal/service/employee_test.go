package service

import (
	"context"
	"testing"

	"review_project/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeWithAccountCanLogIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	employee, err := f.employees.CreateEmployee(ctx, "new@example.com", "QA", "hunter2")
	require.NoError(t, err)
	assert.NotZero(t, employee.ID)

	token, err := f.auth.Login(ctx, "new@example.com", "hunter2")
	require.NoError(t, err)
	identity, err := f.auth.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, domain.EMPLOYEE, identity.Role)
}

func TestCreateEmployeeValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.employees.CreateEmployee(ctx, " ", "QA", "")
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	_, err = f.employees.CreateEmployee(ctx, "dup@example.com", "QA", "")
	require.NoError(t, err)
	_, err = f.employees.CreateEmployee(ctx, "dup@example.com", "QA", "")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestUpdateEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	employee := f.addEmployee(t, "employee1@example.com")

	_, err := f.employees.UpdateEmployee(ctx, employee.ID, EmployeeUpdate{})
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	position := "Lead"
	updated, err := f.employees.UpdateEmployee(ctx, employee.ID, EmployeeUpdate{Position: &position})
	require.NoError(t, err)
	assert.Equal(t, "Lead", updated.Position)
	assert.Equal(t, "employee1@example.com", updated.Email)

	_, err = f.employees.UpdateEmployee(ctx, 999, EmployeeUpdate{Position: &position})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	employee := f.addEmployee(t, "employee1@example.com")

	require.NoError(t, f.employees.DeleteEmployee(ctx, employee.ID))
	assert.ErrorIs(t, f.employees.DeleteEmployee(ctx, employee.ID), domain.ErrNotFound)

	employees, err := f.employees.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestSeedIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	accounts := []SeedAccount{
		{Email: "admin@example.com", Password: "admin", Role: domain.ADMIN},
		{Email: "employee1@example.com", Password: "employee", Role: domain.EMPLOYEE, Position: "Developer"},
	}

	created, err := Seed(ctx, f.db.Users(), f.db.Employees(), accounts)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = Seed(ctx, f.db.Users(), f.db.Employees(), accounts)
	require.NoError(t, err)
	assert.Zero(t, created)

	employees, err := f.employees.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "employee1@example.com", employees[0].Email)

	_, err = f.auth.Login(ctx, "admin@example.com", "admin")
	assert.NoError(t, err)
}

func TestCreateEmployeeRejectsExistingAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addUser(t, "admin@example.com", "admin", domain.ADMIN)

	_, err := f.employees.CreateEmployee(ctx, "admin@example.com", "QA", "pw")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.NotErrorIs(t, err, domain.ErrInternal)
	assert.Equal(t, "an account with this email already exists", domain.PublicMessage(err))

	employees, err := f.employees.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)

	// Without a password no account is created, so the email is free for an employee row.
	_, err = f.employees.CreateEmployee(ctx, "admin@example.com", "QA", "")
	assert.NoError(t, err)
}

type racingEmployees struct {
	EmployeeStore
}

// FindByEmail never sees the competing row, as when two creates interleave.
func (racingEmployees) FindByEmail(context.Context, string) (*domain.Employee, error) {
	return nil, nil
}

func TestCreateEmployeeDuplicateInsertIsBadRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addEmployee(t, "dup@example.com")

	employees := NewEmployeeService(racingEmployees{f.db.Employees()}, f.db.Users())
	_, err := employees.CreateEmployee(ctx, "dup@example.com", "QA", "")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.NotErrorIs(t, err, domain.ErrInternal)
}

func TestUpdateEmployeeEmailMovesAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	subject := f.addEmployee(t, "subject@example.com")
	employee, err := f.employees.CreateEmployee(ctx, "old@example.com", "QA", "pw")
	require.NoError(t, err)
	review := f.addReview(t, subject.ID, "solid quarter")
	_, err = f.workflow.AssignReviewer(ctx, review.ID, employee.ID)
	require.NoError(t, err)

	email := "new@example.com"
	_, err = f.employees.UpdateEmployee(ctx, employee.ID, EmployeeUpdate{Email: &email})
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, "old@example.com", "pw")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	token, err := f.auth.Login(ctx, "new@example.com", "pw")
	require.NoError(t, err)
	identity, err := f.auth.Authenticate(token)
	require.NoError(t, err)

	assigned, err := f.workflow.ListAssignedReviews(ctx, identity.Email)
	require.NoError(t, err)
	require.Len(t, assigned, 1)

	_, err = f.workflow.SubmitFeedback(ctx, review.ID, identity.Email, "after rename")
	assert.NoError(t, err)
}

func TestUpdateEmployeeRejectsTakenEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addUser(t, "admin@example.com", "admin", domain.ADMIN)
	f.addEmployee(t, "taken@example.com")
	employee := f.addEmployee(t, "employee1@example.com")

	for _, email := range []string{"taken@example.com", "admin@example.com"} {
		_, err := f.employees.UpdateEmployee(ctx, employee.ID, EmployeeUpdate{Email: &email})
		assert.ErrorIs(t, err, domain.ErrBadRequest, email)
	}

	same := "employee1@example.com"
	_, err := f.employees.UpdateEmployee(ctx, employee.ID, EmployeeUpdate{Email: &same})
	assert.NoError(t, err)
}
