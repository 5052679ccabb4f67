package authenticating

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

// Authenticator valida os tokens de sessão emitidos pelo backend hospedado
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	issuer string
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.Auth.JWTSecret),
		issuer: cfg.Auth.Issuer,
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	options := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, options...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, ErrInvalidIssuer
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID() == "" {
		return nil, ErrInvalidSubject
	}

	if !claims.UserRole.IsValid() {
		return nil, ErrUnknownRole
	}

	return claims, nil
}
