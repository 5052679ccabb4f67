package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleTechnician UserRole = "technician"
)

// Claims são as claims dos tokens emitidos pelo backend. A sessão é gerenciada
// pelo backend; esta API apenas valida a assinatura e lê o papel do usuário.
type Claims struct {
	Email    string   `json:"email"`
	UserRole UserRole `json:"user_role"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleTechnician
}
