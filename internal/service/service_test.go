package service

import (
	"context"
	"testing"
	"time"

	"review_project/internal/domain"
	"review_project/internal/repository/memory"
	"review_project/internal/utils"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	db        *memory.DB
	codec     *utils.TokenCodec
	auth      *AuthService
	workflow  *ReviewWorkflow
	employees *EmployeeService
	policy    *AccessPolicy
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := memory.NewDB()
	codec := utils.NewTokenCodec("test-secret", time.Hour)
	workflow := NewReviewWorkflow(db.Reviews(), db.Employees())
	return &fixture{
		db:        db,
		codec:     codec,
		auth:      NewAuthService(db.Users(), codec),
		workflow:  workflow,
		employees: NewEmployeeService(db.Employees(), db.Users()),
		policy:    NewAccessPolicy(workflow),
	}
}

func (f *fixture) addUser(t *testing.T, email, password string, role domain.Role) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, f.db.Users().Create(context.Background(), &domain.User{
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}))
}

func (f *fixture) addEmployee(t *testing.T, email string) *domain.Employee {
	t.Helper()
	employee := &domain.Employee{Email: email, Position: "Developer"}
	require.NoError(t, f.db.Employees().Create(context.Background(), employee))
	return employee
}

func (f *fixture) addReview(t *testing.T, employeeID uint, text string) *domain.Review {
	t.Helper()
	review, err := f.workflow.CreateReview(context.Background(), employeeID, text)
	require.NoError(t, err)
	return review
}
