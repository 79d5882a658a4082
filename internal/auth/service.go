// Package auth owns back-office accounts and session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/logx"
	"logistics-backoffice/internal/validation"
)

// Credentials is the register/login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Service registers accounts and issues HS256 session tokens.
type Service struct {
	users  userStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	cost   int
	logger logx.Logger
}

// NewService creates an auth Service. secret must be non-empty.
func NewService(users userStore, secret string, ttl time.Duration, logger logx.Logger) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		cost:   bcrypt.DefaultCost,
		logger: logger,
	}
}

// Register creates an account. A taken email yields apperr.ErrConflict.
func (s *Service) Register(ctx context.Context, c Credentials) (*domain.User, error) {
	c.Email = normalizeEmail(c.Email)
	if err := validation.Struct(c); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &domain.User{ID: uuid.New(), Email: c.Email, PasswordHash: string(hash), CreatedAt: s.now()}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("account registered", logx.String("user_id", u.ID.String()))
	return u, nil
}

// Login checks credentials and returns a signed token.
func (s *Service) Login(ctx context.Context, c Credentials) (string, error) {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(c.Email))
	if err != nil {
		return "", err
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(c.Password)) != nil {
		s.logger.Warn("login rejected", logx.String("email", normalizeEmail(c.Email)))
		return "", apperr.ErrUnauthorized
	}
	return s.Issue(u.ID)
}

// Issue signs a token for the account id.
func (s *Service) Issue(id uuid.UUID) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a token and returns the account id it was issued for.
func (s *Service) Parse(raw string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, fmt.Errorf("%w: token expired", apperr.ErrUnauthorized)
		}
		return uuid.Nil, fmt.Errorf("%w: %v", apperr.ErrUnauthorized, err)
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", apperr.ErrUnauthorized)
	}
	return id, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
