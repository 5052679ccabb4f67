package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
)

// RoleMiddleware restringe o acesso à rota aos papéis informados
func RoleMiddleware(allowedRoles []domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := UserFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.UserRole) {
				logrus.Warningf("Acesso negado para usuário ID=%s, Role=%s", userClaims.UserID(), userClaims.UserRole)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.UserRole{domain.RoleAdmin})
}

// AllRoles permite acesso para administradores e técnicos
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.UserRole{domain.RoleAdmin, domain.RoleTechnician})
}
