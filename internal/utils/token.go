package utils

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"review_project/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"google.golang.org/grpc/metadata"
)

const DefaultTokenTTL = 24 * time.Hour

var (
	ErrMissingAuthorization = &domain.Error{Kind: domain.ErrUnauthorized, Msg: "authorization header is missing"}
	ErrMalformedBearer      = &domain.Error{Kind: domain.ErrUnauthorized, Msg: "invalid authorization header format"}
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Identity returns the authenticated identity carried by the claims.
func (c *Claims) Identity() domain.Identity {
	role, _ := ParseRole(c.Role)
	return domain.Identity{Email: c.Subject, Role: role}
}

// Expiry is the instant from which the token is no longer accepted.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// TokenCodec issues and validates HS256 identity tokens. It holds no state besides
// its signing key, so a single instance is shared by every request.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type TokenOption func(*TokenCodec)

func WithClock(now func() time.Time) TokenOption {
	return func(c *TokenCodec) {
		c.now = now
	}
}

func NewTokenCodec(secret string, ttl time.Duration, opts ...TokenOption) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	c := &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

func (c *TokenCodec) Issue(email string, role domain.Role) (string, error) {
	now := c.now()
	claims := &Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", domain.Internal("sign token", err)
	}
	return signed, nil
}

// Decode verifies the signature and expiry of tokenString. Every failure is reported
// as domain.ErrInvalidToken.
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	if !canonicalSegments(tokenString) {
		return nil, domain.ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	if claims.ExpiresAt == nil || !c.now().Before(claims.ExpiresAt.Time) {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	if _, ok := ParseRole(claims.Role); !ok {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// canonicalSegments rejects tokens whose segments are not strict unpadded base64url,
// so two different strings can never carry the same signed bytes.
func canonicalSegments(tokenString string) bool {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
		if _, err := base64.RawURLEncoding.Strict().DecodeString(part); err != nil {
			return false
		}
	}
	return true
}

func parseBearer(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingAuthorization
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrMalformedBearer
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		return "", ErrMalformedBearer
	}
	return tokenString, nil
}

func ExtractTokenFromContext(ctx context.Context) (string, error) {
	headers, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ErrMissingAuthorization
	}

	authHeaders := headers.Get("Authorization")
	if len(authHeaders) == 0 {
		return "", ErrMissingAuthorization
	}
	return parseBearer(authHeaders[0])
}

func ExtractTokenFromRequest(r *http.Request) (string, error) {
	return parseBearer(r.Header.Get("Authorization"))
}
