package grpc

import (
	"review_project/internal/middleware"
	"review_project/internal/service"
	authmw "review_project/internal/utils/middleware"
	reviews_v1 "review_project/pkg/grpc/reviews.v1"

	googlegrpc "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

type Dependencies struct {
	Auth      *service.AuthService
	Workflow  *service.ReviewWorkflow
	Employees *service.EmployeeService
	Policy    *service.AccessPolicy
	// Cache enables Idempotency-Key replay when set.
	Cache   middleware.Cache
	Tracing bool
}

// NewServer builds the gRPC server with both services registered. Interceptors run in
// order: tracing, authentication, admin gate, idempotency.
func NewServer(deps Dependencies) *googlegrpc.Server {
	var interceptors []googlegrpc.UnaryServerInterceptor
	if deps.Tracing {
		interceptors = append(interceptors, middleware.TracingInterceptor)
	}
	interceptors = append(interceptors,
		authmw.AuthMiddleware(deps.Auth, reviews_v1.PublicMethods),
		authmw.RoleRequiredMiddleware(deps.Policy, reviews_v1.AdminMethods),
	)
	if deps.Cache != nil {
		interceptors = append(interceptors, middleware.IdempotencyInterceptor(deps.Cache, middleware.DefaultReplayTTL))
	}

	srv := googlegrpc.NewServer(googlegrpc.ChainUnaryInterceptor(interceptors...))
	reflection.Register(srv)
	reviews_v1.RegisterAuthServiceServer(srv, NewAuthServiceServer(deps.Auth))
	reviews_v1.RegisterReviewServiceServer(srv, NewReviewServiceServer(deps.Workflow, deps.Employees))
	return srv
}
