package utils

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"review_project/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestCodec(clock *fakeClock) *TokenCodec {
	return NewTokenCodec("test-secret", 0, WithClock(clock.Now))
}

func TestTokenRoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(clock)

	cases := []struct {
		email string
		role  domain.Role
	}{
		{"admin@example.com", domain.ADMIN},
		{"employee1@example.com", domain.EMPLOYEE},
		{"o'brien+reviews@example.co.uk", domain.EMPLOYEE},
	}
	for _, tc := range cases {
		token, err := codec.Issue(tc.email, tc.role)
		require.NoError(t, err)

		claims, err := codec.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, tc.email, claims.Subject)
		assert.Equal(t, domain.Identity{Email: tc.email, Role: tc.role}, claims.Identity())
		assert.WithinDuration(t, clock.now.Add(DefaultTokenTTL), claims.Expiry(), 0)
	}
}

func TestTokenDefaultsToTwentyFourHours(t *testing.T) {
	assert.Equal(t, 24*time.Hour, NewTokenCodec("s", 0).TTL())
	assert.Equal(t, 24*time.Hour, NewTokenCodec("s", -time.Minute).TTL())
	assert.Equal(t, time.Hour, NewTokenCodec("s", time.Hour).TTL())
}

func TestTokenExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(clock)

	token, err := codec.Issue("employee1@example.com", domain.EMPLOYEE)
	require.NoError(t, err)
	expiry := clock.now.Add(DefaultTokenTTL)

	clock.now = expiry.Add(-time.Second)
	_, err = codec.Decode(token)
	require.NoError(t, err)

	for _, at := range []time.Time{expiry, expiry.Add(time.Nanosecond), expiry.Add(time.Hour)} {
		clock.now = at
		_, err = codec.Decode(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "decode at %s", at)
	}
}

func TestTokenTamper(t *testing.T) {
	codec := newTestCodec(&fakeClock{now: time.Now()})
	token, err := codec.Issue("employee1@example.com", domain.EMPLOYEE)
	require.NoError(t, err)

	for i := range token {
		tampered := []byte(token)
		if tampered[i] == 'A' {
			tampered[i] = 'B'
		} else {
			tampered[i] = 'A'
		}
		_, err := codec.Decode(string(tampered))
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "byte %d", i)
	}
}

func TestTokenRejectsForeignSecretAndAlgorithm(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	other := NewTokenCodec("other-secret", 0, WithClock(clock.Now))
	token, err := other.Issue("admin@example.com", domain.ADMIN)
	require.NoError(t, err)

	_, err = newTestCodec(clock).Decode(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Role: string(domain.ADMIN),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin@example.com",
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = newTestCodec(clock).Decode(raw)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenRejectsUnknownRole(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	codec := newTestCodec(clock)
	token, err := codec.Issue("someone@example.com", domain.Role("superuser"))
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenRejectsMalformed(t *testing.T) {
	codec := newTestCodec(&fakeClock{now: time.Now()})
	for _, raw := range []string{"", "abc", "a.b", "a..c", "not a token at all"} {
		_, err := codec.Decode(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, raw)
	}
}

func TestExtractTokenFromContext(t *testing.T) {
	_, err := ExtractTokenFromContext(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Token abc"))
	_, err = ExtractTokenFromContext(ctx)
	assert.True(t, errors.Is(err, ErrMalformedBearer))

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def.ghi"))
	token, err := ExtractTokenFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestExtractTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/employee/reviews", nil)
	_, err := ExtractTokenFromRequest(req)
	assert.ErrorIs(t, err, ErrMissingAuthorization)

	req.Header.Set("Authorization", "Bearer ")
	_, err = ExtractTokenFromRequest(req)
	assert.ErrorIs(t, err, ErrMalformedBearer)

	req.Header.Set("Authorization", "Bearer tok")
	token, err := ExtractTokenFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}
