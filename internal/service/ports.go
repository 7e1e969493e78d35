package service

import (
	"context"

	"review_project/internal/domain"
)

// Stores report an absent row as (nil, nil). A unique-index violation is returned as
// domain.ErrDuplicateKey; any other error is a persistence failure.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type EmployeeStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByID(ctx context.Context, id uint) (*domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) error
	// CreateWithAccount stores the employee and its login account atomically.
	CreateWithAccount(ctx context.Context, employee *domain.Employee, user *domain.User) error
	// Update reports false when the employee does not exist. A changed email is
	// applied to the matching login account in the same transaction.
	Update(ctx context.Context, employee *domain.Employee) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ListAll(ctx context.Context) ([]*domain.Employee, error)
}

type ReviewStore interface {
	Create(ctx context.Context, review *domain.Review) error
	FindAll(ctx context.Context) ([]*domain.Review, error)
	FindByID(ctx context.Context, id uint) (*domain.Review, error)
	FindByReviewer(ctx context.Context, reviewerID uint) ([]*domain.Review, error)
	// Update writes the review text only and reports false when the review does not exist.
	Update(ctx context.Context, review *domain.Review) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	// AppendComment appends text to the review's comment log and returns the updated
	// review, or nil when the review does not exist.
	AppendComment(ctx context.Context, reviewID uint, text string) (*domain.Review, error)
	AssignReviewer(ctx context.Context, reviewID, reviewerID uint) (*domain.ReviewReviewer, error)
	IsReviewerAssigned(ctx context.Context, reviewID, reviewerID uint) (bool, error)
	ListReviewers(ctx context.Context, reviewID uint) ([]*domain.ReviewReviewer, error)
}
