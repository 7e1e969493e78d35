package middleware

import (
	"errors"

	"review_project/internal/domain"
	"review_project/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusError converts a domain error into a gRPC status. Internal failures are logged
// with their cause and reported with a generic message.
func StatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(Code(err), publicMessage(err))
}

func Code(err error) codes.Code {
	switch {
	case errors.Is(err, domain.ErrInternal):
		return codes.Internal
	case errors.Is(err, domain.ErrUnauthorized):
		return codes.Unauthenticated
	case errors.Is(err, domain.ErrForbidden):
		return codes.PermissionDenied
	case errors.Is(err, domain.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, domain.ErrBadRequest):
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

func publicMessage(err error) string {
	if Code(err) == codes.Internal {
		logger.Logger.Error("Internal error", zap.Error(err))
	}
	return domain.PublicMessage(err)
}
