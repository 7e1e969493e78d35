package grpc

import (
	"context"

	"review_project/internal/service"
	authmw "review_project/internal/utils/middleware"
	reviews_v1 "review_project/pkg/grpc/reviews.v1"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type AuthServiceServer struct {
	reviews_v1.UnimplementedAuthServiceServer
	Auth *service.AuthService
}

func NewAuthServiceServer(auth *service.AuthService) *AuthServiceServer {
	return &AuthServiceServer{Auth: auth}
}

func (s *AuthServiceServer) Login(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req reviews_v1.LoginRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}

	token, err := s.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, authmw.StatusError(err)
	}
	return encode(reviews_v1.LoginResponse{Token: token})
}

func decode(in *structpb.Struct, v any) error {
	if err := reviews_v1.Decode(in, v); err != nil {
		return status.Error(codes.InvalidArgument, "invalid request body")
	}
	return nil
}

func encode(v any) (*structpb.Struct, error) {
	out, err := reviews_v1.Encode(v)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode response")
	}
	return out, nil
}
