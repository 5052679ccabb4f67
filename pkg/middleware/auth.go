package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

var publicPaths = map[string]struct{}{
	"/healthcheck": {},
	"/metrics":     {},
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, public := publicPaths[r.URL.Path]; public || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token rejeitado")

				if authenticating.IsExpired(err) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), claims)))
		})
	}
}

// UserFromContext devolve as claims gravadas pelo AuthMiddleware
func UserFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

// WithUser grava as claims no contexto da requisição
func WithUser(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}
