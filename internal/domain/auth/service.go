package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
)

// Service verifies bearer tokens minted by the account system.
type Service interface {
	Enabled() bool
	ValidateToken(ctx context.Context, token string) (Claims, error)
	IssueToken(subject string, ttl time.Duration) (string, error)
}

type service struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs the token verifier.
func NewService(cfg Config, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		logger: logger.With("component", "auth.service"),
		now:    time.Now,
	}
}

func (s *service) Enabled() bool {
	return s.cfg.Enabled()
}

func (s *service) ValidateToken(_ context.Context, token string) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token cannot be empty", nil)
	}
	claims, err := s.parseToken(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.TokenType != TokenTypeAccess {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token type not allowed", nil)
	}
	return claims, nil
}

// IssueToken signs an access token. It exists for operators and tests; the
// account system owns real issuance.
func (s *service) IssueToken(subject string, ttl time.Duration) (string, error) {
	if !s.cfg.Enabled() {
		return "", apperrors.Wrap(apperrors.CodeUnauthorized, "token signing is disabled", nil)
	}
	now := s.now()
	claims := tokenClaims{
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *service) parseToken(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		s.logger.Debug("token rejected", "error", err)
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token validation failed", err)
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token invalid", nil)
	}
	if claims.ExpiresAt == nil {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token missing expiry", nil)
	}
	return Claims{
		Subject:   claims.Subject,
		TokenType: claims.TokenType,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

type tokenClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"type"`
}
