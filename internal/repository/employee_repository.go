package repository

import (
	"context"
	"errors"

	"review_project/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	return translateError(r.db.WithContext(ctx).Create(employee).Error)
}

func (r *EmployeeRepository) CreateWithAccount(ctx context.Context, employee *domain.Employee, user *domain.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(employee).Error; err != nil {
			return err
		}
		return tx.Create(user).Error
	})
	return translateError(err)
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uint) (*domain.Employee, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *EmployeeRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.WithContext(ctx).Where(query, arg).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

// Update writes email and position. A changed email is carried over to the login
// account of the same employee inside one transaction.
func (r *EmployeeRepository) Update(ctx context.Context, employee *domain.Employee) (bool, error) {
	updated := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.Employee
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", employee.ID).First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Model(employee).Select("email", "position").Updates(employee).Error; err != nil {
			return err
		}
		updated = true

		if current.Email == employee.Email {
			return nil
		}
		return tx.Model(&domain.User{}).Where("email = ?", current.Email).Update("email", employee.Email).Error
	})
	if err != nil {
		return false, translateError(err)
	}
	return updated, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *EmployeeRepository) ListAll(ctx context.Context) ([]*domain.Employee, error) {
	var employees []*domain.Employee
	if err := r.db.WithContext(ctx).Order("id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}
