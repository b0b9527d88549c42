// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/aimericdrk/ai-fall-guard/config"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/service"
)

const defaultAccessTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: ttl,
		now:       time.Now,
	}, nil
}

// GenerateAccessToken creates a signed token with {email, sub, roles, iat, exp}.
func (s *jwtService) GenerateAccessToken(user *entity.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("cannot issue a token without a user ID")
	}

	issuedAt := s.now()
	claims := &service.Claims{
		Email: user.Email,
		Roles: user.Roles().ToStrings(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken parses the token, rejecting non-HMAC algorithms and expired tokens.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Subject == "" {
		return nil, errors.New("token subject is missing")
	}

	return claims, nil
}

// TokenTTL returns the configured access token lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.accessTTL
}
