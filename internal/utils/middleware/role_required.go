package middleware

import (
	"context"

	"review_project/internal/domain"
	"review_project/internal/service"

	"google.golang.org/grpc"
)

// RoleRequiredMiddleware rejects calls to adminMethods unless the identity placed in
// the context by AuthMiddleware passes the admin check. It must run after AuthMiddleware.
func RoleRequiredMiddleware(policy *service.AccessPolicy, adminMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if adminMethods[info.FullMethod] {
			identity, ok := IdentityFromContext(ctx)
			if !ok {
				return nil, StatusError(domain.ErrUnauthorized)
			}
			if err := policy.RequireAdmin(identity).Err(); err != nil {
				return nil, StatusError(err)
			}
		}
		return handler(ctx, req)
	}
}
