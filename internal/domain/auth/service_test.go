package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
)

func newTestService(secret string) *service {
	return &service{
		cfg:    Config{Secret: secret},
		logger: newTestLogger(),
		now:    time.Now,
	}
}

func TestService_IssueAndValidate(t *testing.T) {
	svc := newTestService("test-secret")
	require.True(t, svc.Enabled())

	token, err := svc.IssueToken("traveler-42", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "traveler-42", claims.Subject)
	require.Equal(t, TokenTypeAccess, claims.TokenType)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestService_RejectsExpiredToken(t *testing.T) {
	svc := newTestService("test-secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.IssueToken("traveler-42", time.Hour)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(context.Background(), token)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken))
}

func TestService_RejectsForeignSignature(t *testing.T) {
	issuer := newTestService("other-secret")
	token, err := issuer.IssueToken("traveler-42", time.Hour)
	require.NoError(t, err)

	_, err = newTestService("test-secret").ValidateToken(context.Background(), token)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken))
}

func TestService_RejectsRefreshTokens(t *testing.T) {
	now := time.Now()
	claims := tokenClaims{
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "traveler-42",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = newTestService("test-secret").ValidateToken(context.Background(), signed)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken))
}

func TestService_RejectsMissingExpiry(t *testing.T) {
	claims := tokenClaims{TokenType: TokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "x"}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = newTestService("test-secret").ValidateToken(context.Background(), signed)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken))
}

func TestService_DisabledCannotIssue(t *testing.T) {
	svc := newTestService("")
	require.False(t, svc.Enabled())
	_, err := svc.IssueToken("x", time.Hour)
	require.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
