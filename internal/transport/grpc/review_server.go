package grpc

import (
	"context"

	"review_project/internal/domain"
	"review_project/internal/service"
	"review_project/internal/transport"
	authmw "review_project/internal/utils/middleware"
	reviews_v1 "review_project/pkg/grpc/reviews.v1"

	"google.golang.org/protobuf/types/known/structpb"
)

// ReviewServiceServer exposes employee administration and the review workflow.
// Admin methods are gated by RoleRequiredMiddleware before they reach this server.
type ReviewServiceServer struct {
	Workflow  *service.ReviewWorkflow
	Employees *service.EmployeeService
}

func NewReviewServiceServer(workflow *service.ReviewWorkflow, employees *service.EmployeeService) *ReviewServiceServer {
	return &ReviewServiceServer{Workflow: workflow, Employees: employees}
}

func (s *ReviewServiceServer) CreateEmployee(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req reviews_v1.CreateEmployeeRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	employee, err := s.Employees.CreateEmployee(ctx, req.Email, req.Position, req.Password)
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(transport.EmployeeMessage(employee))
}

func (s *ReviewServiceServer) ListEmployees(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	employees, err := s.Employees.ListEmployees(ctx)
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(transport.EmployeeList(employees))
}

func (s *ReviewServiceServer) UpdateEmployee(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req reviews_v1.UpdateEmployeeRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	employee, err := s.Employees.UpdateEmployee(ctx, req.ID, service.EmployeeUpdate{Email: req.Email, Position: req.Position})
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(transport.EmployeeMessage(employee))
}

func (s *ReviewServiceServer) DeleteEmployee(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req reviews_v1.IDRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	if err := s.Employees.DeleteEmployee(ctx, req.ID); err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(reviews_v1.MessageResponse{Message: "Employee deleted"})
}

func (s *ReviewServiceServer) CreateReview(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req reviews_v1.CreateReviewRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	review, err := s.Workflow.CreateReview(ctx, req.EmployeeID, req.PerformanceReview)
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(transport.ReviewMessage(review))
}

func (s *ReviewServiceServer) ListReviews(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	reviews, err := s.Workflow.ListReviews(ctx)
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(transport.ReviewList(reviews))
}

func (s *ReviewServiceServer) GetReview(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req reviews_v1.IDRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	review, err := s.Workflow.GetReview(ctx, req.ID)
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(transport.ReviewMessage(review))
}

func (s *ReviewServiceServer) UpdateReview(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req reviews_v1.UpdateReviewRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	review, err := s.Workflow.UpdateReview(ctx, req.ID, req.PerformanceReview)
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(transport.ReviewMessage(review))
}

func (s *ReviewServiceServer) DeleteReview(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req reviews_v1.IDRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	if err := s.Workflow.DeleteReview(ctx, req.ID); err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(reviews_v1.MessageResponse{Message: "Review deleted"})
}

func (s *ReviewServiceServer) AssignReviewer(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req reviews_v1.AssignReviewerRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	edge, err := s.Workflow.AssignReviewer(ctx, req.ReviewID, req.ReviewerID)
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(transport.ReviewerMessage(edge))
}

func (s *ReviewServiceServer) ListReviewers(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req reviews_v1.IDRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	edges, err := s.Workflow.ListReviewers(ctx, req.ID)
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(transport.ReviewerList(edges))
}

func (s *ReviewServiceServer) ListAssignedReviews(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	identity, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.Workflow.ListAssignedReviews(ctx, identity.Email)
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(transport.ReviewList(reviews))
}

func (s *ReviewServiceServer) SubmitFeedback(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	identity, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	var req reviews_v1.SubmitFeedbackRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	review, err := s.Workflow.SubmitFeedback(ctx, req.ReviewID, identity.Email, req.Comment)
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(transport.ReviewMessage(review))
}

func identityFrom(ctx context.Context) (domain.Identity, error) {
	identity, ok := authmw.IdentityFromContext(ctx)
	if !ok {
		return domain.Identity{}, authmw.StatusError(domain.ErrUnauthorized)
	}
	return identity, nil
}
