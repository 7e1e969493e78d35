package middleware

import (
	"context"

	"review_project/internal/domain"
	"review_project/internal/utils"

	"google.golang.org/grpc"
)

type identityKey struct{}

func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok
}

type Authenticator interface {
	Authenticate(token string) (domain.Identity, error)
}

// AuthMiddleware resolves the bearer token in the "authorization" metadata into an
// identity and stores it in the request context. Methods listed in publicMethods
// are passed through untouched.
func AuthMiddleware(auth Authenticator, publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		tokenString, err := utils.ExtractTokenFromContext(ctx)
		if err != nil {
			return nil, StatusError(err)
		}

		identity, err := auth.Authenticate(tokenString)
		if err != nil {
			return nil, StatusError(err)
		}

		return handler(WithIdentity(ctx, identity), req)
	}
}
