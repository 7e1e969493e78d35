package service

import (
	"context"

	"review_project/internal/domain"
)

// Decision is the outcome of an access check: either allowed, or denied with a reason.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Err converts a denial into a Forbidden error; an allowed decision yields nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return domain.Forbidden(d.Reason)
}

// AccessPolicy holds the two independent authorization checks. Role checks are static;
// assignment checks depend on workflow state and are delegated to the review workflow.
type AccessPolicy struct {
	assignments AssignmentChecker
}

type AssignmentChecker interface {
	IsAssignedReviewer(ctx context.Context, reviewID uint, email string) (bool, error)
}

func NewAccessPolicy(assignments AssignmentChecker) *AccessPolicy {
	return &AccessPolicy{assignments: assignments}
}

func (p *AccessPolicy) RequireAdmin(identity domain.Identity) Decision {
	if identity.Role != domain.ADMIN {
		return Deny("admin role required")
	}
	return Allow()
}

func (p *AccessPolicy) RequireAssignedReviewer(ctx context.Context, identity domain.Identity, reviewID uint) (Decision, error) {
	assigned, err := p.assignments.IsAssignedReviewer(ctx, reviewID, identity.Email)
	if err != nil {
		return Decision{}, err
	}
	if !assigned {
		return Deny("not assigned to this review"), nil
	}
	return Allow(), nil
}
