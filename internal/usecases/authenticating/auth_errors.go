package authenticating

import (
	"errors"
)

var (
	ErrMissingToken   = errors.New("token ausente")
	ErrInvalidToken   = errors.New("token inválido")
	ErrExpiredToken   = errors.New("token expirado")
	ErrUnknownRole    = errors.New("papel de usuário desconhecido")
	ErrMissingSecret  = errors.New("segredo de verificação não configurado")
	ErrInvalidIssuer  = errors.New("emissor do token inválido")
	ErrInvalidSubject = errors.New("token sem identificação do usuário")
)

// IsExpired indica se a falha de validação foi por expiração do token
func IsExpired(err error) bool {
	return errors.Is(err, ErrExpiredToken)
}
