package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"review_project/internal/domain"
	"review_project/internal/utils"
)

type EmployeeService struct {
	employees EmployeeStore
	users     UserStore
}

func NewEmployeeService(employees EmployeeStore, users UserStore) *EmployeeService {
	return &EmployeeService{employees: employees, users: users}
}

var (
	errEmployeeExists = domain.BadRequest("an employee with this email already exists")
	errAccountExists  = domain.BadRequest("an account with this email already exists")
)

type EmployeeUpdate struct {
	Email    *string
	Position *string
}

// CreateEmployee stores a new employee. When password is non-empty an Employee-role
// login account with the same email is created in the same transaction.
func (s *EmployeeService) CreateEmployee(ctx context.Context, email, position, password string) (*domain.Employee, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.BadRequest("email is required")
	}

	if err := s.ensureEmployeeEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}

	employee := &domain.Employee{Email: email, Position: position}
	if password == "" {
		if err := s.employees.Create(ctx, employee); err != nil {
			return nil, storeError("create employee", err, errEmployeeExists)
		}
		return employee, nil
	}

	if err := s.ensureAccountEmailFree(ctx, email); err != nil {
		return nil, err
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	account := &domain.User{Email: email, Password: hashed, Role: domain.EMPLOYEE}
	if err := s.employees.CreateWithAccount(ctx, employee, account); err != nil {
		return nil, storeError("create employee account", err, errAccountExists)
	}
	return employee, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	employees, err := s.employees.ListAll(ctx)
	if err != nil {
		return nil, domain.Internal("list employees", err)
	}
	sort.SliceStable(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
	return employees, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id uint) (*domain.Employee, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Internal("find employee", err)
	}
	if employee == nil {
		return nil, domain.NotFound("employee")
	}
	return employee, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint, update EmployeeUpdate) (*domain.Employee, error) {
	if update.Email == nil && update.Position == nil {
		return nil, domain.BadRequest("no fields to update")
	}
	if update.Email != nil && strings.TrimSpace(*update.Email) == "" {
		return nil, domain.BadRequest("email must not be empty")
	}

	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if email != employee.Email {
			if err := s.ensureEmployeeEmailFree(ctx, email, employee.ID); err != nil {
				return nil, err
			}
			if err := s.ensureAccountEmailFree(ctx, email); err != nil {
				return nil, err
			}
		}
		employee.Email = email
	}
	if update.Position != nil {
		employee.Position = *update.Position
	}

	updated, err := s.employees.Update(ctx, employee)
	if err != nil {
		return nil, storeError("update employee", err, errEmployeeExists)
	}
	if !updated {
		return nil, domain.NotFound("employee")
	}
	return employee, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint) error {
	deleted, err := s.employees.Delete(ctx, id)
	if err != nil {
		return domain.Internal("delete employee", err)
	}
	if !deleted {
		return domain.NotFound("employee")
	}
	return nil
}

func (s *EmployeeService) ensureEmployeeEmailFree(ctx context.Context, email string, self uint) error {
	existing, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		return domain.Internal("find employee", err)
	}
	if existing != nil && existing.ID != self {
		return errEmployeeExists
	}
	return nil
}

func (s *EmployeeService) ensureAccountEmailFree(ctx context.Context, email string) error {
	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return domain.Internal("find user", err)
	}
	if account != nil {
		return errAccountExists
	}
	return nil
}

// storeError reports a unique-index violation as conflict and any other store
// failure as internal.
func storeError(op string, err, conflict error) error {
	if errors.Is(err, domain.ErrDuplicateKey) {
		return conflict
	}
	return domain.Internal(op, err)
}
