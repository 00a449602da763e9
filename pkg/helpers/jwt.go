package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fgcplatform/identity/internal/domain/entity"
)

var (
	ErrInactiveTokenSubject = errors.New("cannot issue token for inactive user")
	ErrSecretTooShort       = errors.New("jwt secret must be at least 32 bytes")
)

// TokenConfig carries the validation parameters that must match between
// issuance and validation. Supplied externally, never read from env here.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// TokenService issues and validates HS256 bearer tokens binding a user's
// identity and role. Stateless; safe for concurrent use.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	logger   *logrus.Logger
}

// Claims is the principal extracted from a validated token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func NewTokenService(cfg TokenConfig, logger *logrus.Logger) (*TokenService, error) {
	if len(cfg.Secret) < 32 {
		return nil, ErrSecretTooShort
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 120 * time.Minute
	}
	return &TokenService{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      ttl,
		logger:   logger,
	}, nil
}

// Issue signs a time-boxed token for an active user. Fails for inactive users.
func (s *TokenService) Issue(u *entity.User) (string, time.Time, error) {
	if !u.IsActive {
		return "", time.Time{}, ErrInactiveTokenSubject
	}
	now := time.Now()
	exp := now.Add(s.ttl)
	claims := &Claims{
		Email: u.Email.Value(),
		Name:  u.Name,
		Role:  u.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	return signed, exp, err
}

// Validate verifies signature, algorithm, issuer, audience, and expiry
// (zero clock skew). Returns nil on any failure; the specific failure class
// is logged for operators but never surfaced to the caller.
func (s *TokenService) Validate(tokenStr string) *Claims {
	if tokenStr == "" {
		return nil
	}
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims,
		func(token *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		s.logValidationFailure(err)
		return nil
	}
	if !tkn.Valid {
		s.logValidationFailure(errors.New("token marked invalid"))
		return nil
	}
	return claims
}

// ResolveUserID validates the token and extracts the subject-id claim.
func (s *TokenService) ResolveUserID(tokenStr string) (uuid.UUID, bool) {
	claims := s.Validate(tokenStr)
	if claims == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (s *TokenService) logValidationFailure(err error) {
	if s.logger == nil {
		return
	}
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		s.logger.WithError(err).Warn("token expired")
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		s.logger.WithError(err).Warn("token signature invalid")
	default:
		s.logger.WithError(err).Warn("token validation failed")
	}
}
