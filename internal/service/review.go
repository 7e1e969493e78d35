package service

import (
	"context"
	"sort"
	"strings"

	"review_project/internal/domain"
)

// ReviewWorkflow owns review creation, reviewer assignment and feedback submission.
// Role checks happen at the call site; the only check performed here is the
// assignment gate on feedback, which depends on stored assignment edges.
type ReviewWorkflow struct {
	reviews   ReviewStore
	employees EmployeeStore
}

var errAlreadyAssigned = domain.BadRequest("reviewer is already assigned to this review")

func NewReviewWorkflow(reviews ReviewStore, employees EmployeeStore) *ReviewWorkflow {
	return &ReviewWorkflow{reviews: reviews, employees: employees}
}

func (w *ReviewWorkflow) CreateReview(ctx context.Context, employeeID uint, text string) (*domain.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.BadRequest("performance_review is required")
	}
	if _, err := w.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		EmployeeID:        employeeID,
		PerformanceReview: text,
		Comments:          []string{},
	}
	if err := w.reviews.Create(ctx, review); err != nil {
		return nil, domain.Internal("create review", err)
	}
	return review, nil
}

func (w *ReviewWorkflow) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	reviews, err := w.reviews.FindAll(ctx)
	if err != nil {
		return nil, domain.Internal("list reviews", err)
	}
	sortReviews(reviews)
	return reviews, nil
}

func (w *ReviewWorkflow) GetReview(ctx context.Context, id uint) (*domain.Review, error) {
	review, err := w.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Internal("find review", err)
	}
	if review == nil {
		return nil, domain.NotFound("review")
	}
	return review, nil
}

// UpdateReview replaces the review text. A nil text means nothing to update.
// The comment log is never modified here.
func (w *ReviewWorkflow) UpdateReview(ctx context.Context, id uint, text *string) (*domain.Review, error) {
	if text == nil {
		return nil, domain.BadRequest("no fields to update")
	}
	if strings.TrimSpace(*text) == "" {
		return nil, domain.BadRequest("performance_review must not be empty")
	}

	review, err := w.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}
	review.PerformanceReview = *text
	updated, err := w.reviews.Update(ctx, review)
	if err != nil {
		return nil, domain.Internal("update review", err)
	}
	if !updated {
		return nil, domain.NotFound("review")
	}
	return review, nil
}

func (w *ReviewWorkflow) DeleteReview(ctx context.Context, id uint) error {
	deleted, err := w.reviews.Delete(ctx, id)
	if err != nil {
		return domain.Internal("delete review", err)
	}
	if !deleted {
		return domain.NotFound("review")
	}
	return nil
}

// AssignReviewer links a reviewer to a review. Both must exist and the pair may only
// be assigned once.
func (w *ReviewWorkflow) AssignReviewer(ctx context.Context, reviewID, reviewerID uint) (*domain.ReviewReviewer, error) {
	if _, err := w.GetReview(ctx, reviewID); err != nil {
		return nil, err
	}
	reviewer, err := w.employees.FindByID(ctx, reviewerID)
	if err != nil {
		return nil, domain.Internal("find reviewer", err)
	}
	if reviewer == nil {
		return nil, domain.NotFound("reviewer")
	}

	assigned, err := w.reviews.IsReviewerAssigned(ctx, reviewID, reviewerID)
	if err != nil {
		return nil, domain.Internal("check assignment", err)
	}
	if assigned {
		return nil, errAlreadyAssigned
	}

	// A concurrent assignment of the same pair can still win the insert.
	edge, err := w.reviews.AssignReviewer(ctx, reviewID, reviewerID)
	if err != nil {
		return nil, storeError("assign reviewer", err, errAlreadyAssigned)
	}
	return edge, nil
}

func (w *ReviewWorkflow) ListReviewers(ctx context.Context, reviewID uint) ([]*domain.ReviewReviewer, error) {
	if _, err := w.GetReview(ctx, reviewID); err != nil {
		return nil, err
	}
	edges, err := w.reviews.ListReviewers(ctx, reviewID)
	if err != nil {
		return nil, domain.Internal("list reviewers", err)
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
	return edges, nil
}

// ListAssignedReviews returns the reviews the employee with reviewerEmail is assigned
// to, ordered by review id.
func (w *ReviewWorkflow) ListAssignedReviews(ctx context.Context, reviewerEmail string) ([]*domain.Review, error) {
	employee, err := w.employeeByEmail(ctx, reviewerEmail)
	if err != nil {
		return nil, err
	}

	reviews, err := w.reviews.FindByReviewer(ctx, employee.ID)
	if err != nil {
		return nil, domain.Internal("find assigned reviews", err)
	}
	return dedupeReviews(reviews), nil
}

// SubmitFeedback appends comment to the review's comment log, provided the submitter
// holds an assignment edge for the review.
func (w *ReviewWorkflow) SubmitFeedback(ctx context.Context, reviewID uint, submitterEmail, comment string) (*domain.Review, error) {
	employee, err := w.employeeByEmail(ctx, submitterEmail)
	if err != nil {
		return nil, err
	}

	assigned, err := w.reviews.IsReviewerAssigned(ctx, reviewID, employee.ID)
	if err != nil {
		return nil, domain.Internal("check assignment", err)
	}
	if !assigned {
		return nil, domain.Forbidden("not assigned to this review")
	}

	if strings.TrimSpace(comment) == "" {
		return nil, domain.BadRequest("comment is required")
	}

	review, err := w.reviews.AppendComment(ctx, reviewID, comment)
	if err != nil {
		return nil, domain.Internal("append comment", err)
	}
	if review == nil {
		return nil, domain.NotFound("review")
	}
	return review, nil
}

func (w *ReviewWorkflow) IsAssignedReviewer(ctx context.Context, reviewID uint, email string) (bool, error) {
	employee, err := w.employees.FindByEmail(ctx, email)
	if err != nil {
		return false, domain.Internal("find employee", err)
	}
	if employee == nil {
		return false, nil
	}
	assigned, err := w.reviews.IsReviewerAssigned(ctx, reviewID, employee.ID)
	if err != nil {
		return false, domain.Internal("check assignment", err)
	}
	return assigned, nil
}

func (w *ReviewWorkflow) employeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	employee, err := w.employees.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.Internal("find employee", err)
	}
	if employee == nil {
		return nil, domain.NotFound("employee")
	}
	return employee, nil
}

func (w *ReviewWorkflow) requireEmployee(ctx context.Context, id uint) (*domain.Employee, error) {
	employee, err := w.employees.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Internal("find employee", err)
	}
	if employee == nil {
		return nil, domain.NotFound("employee")
	}
	return employee, nil
}

func sortReviews(reviews []*domain.Review) {
	sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
}

func dedupeReviews(reviews []*domain.Review) []*domain.Review {
	sortReviews(reviews)
	out := make([]*domain.Review, 0, len(reviews))
	for i, review := range reviews {
		if i > 0 && reviews[i-1].ID == review.ID {
			continue
		}
		out = append(out, review)
	}
	return out
}
