package service

import (
	"context"

	"review_project/internal/domain"
	"review_project/internal/utils"
)

type SeedAccount struct {
	Email    string
	Password string
	Role     domain.Role
	Position string
}

var DemoAccounts = []SeedAccount{
	{Email: "admin@example.com", Password: "admin", Role: domain.ADMIN},
	{Email: "employee1@example.com", Password: "employee", Role: domain.EMPLOYEE, Position: "Developer"},
	{Email: "employee2@example.com", Password: "employee", Role: domain.EMPLOYEE, Position: "Designer"},
}

// Seed creates the given accounts unless a user with the same email already exists.
// Employee-role accounts also get an employee row. It returns the number of accounts created.
func Seed(ctx context.Context, users UserStore, employees EmployeeStore, accounts []SeedAccount) (int, error) {
	created := 0
	for _, account := range accounts {
		existing, err := users.FindByEmail(ctx, account.Email)
		if err != nil {
			return created, domain.Internal("find user", err)
		}
		if existing != nil {
			continue
		}

		hashed, err := utils.HashPassword(account.Password)
		if err != nil {
			return created, err
		}
		user := &domain.User{Email: account.Email, Password: hashed, Role: account.Role}

		if account.Role == domain.EMPLOYEE {
			employee := &domain.Employee{Email: account.Email, Position: account.Position}
			if err := employees.CreateWithAccount(ctx, employee, user); err != nil {
				return created, domain.Internal("seed employee", err)
			}
		} else if err := users.Create(ctx, user); err != nil {
			return created, domain.Internal("seed user", err)
		}
		created++
	}
	return created, nil
}
