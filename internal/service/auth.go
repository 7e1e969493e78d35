package service

import (
	"context"

	"review_project/internal/domain"
	"review_project/internal/utils"
)

type AuthService struct {
	users UserStore
	codec *utils.TokenCodec
}

func NewAuthService(users UserStore, codec *utils.TokenCodec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

// Login exchanges credentials for a fresh token. An unknown email and a wrong password
// fail with the same error so callers cannot tell them apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.Internal("find user", err)
	}
	if user == nil {
		return "", domain.ErrUnauthorized
	}

	ok, err := utils.VerifyPassword(user.Password, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrUnauthorized
	}

	return s.codec.Issue(user.Email, user.Role)
}

// Authenticate resolves a bearer token into the identity it was minted for.
func (s *AuthService) Authenticate(token string) (domain.Identity, error) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		return domain.Identity{}, err
	}
	return claims.Identity(), nil
}
