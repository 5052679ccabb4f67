package analytics

import (
	"errors"
	"fmt"

	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrInvalidPeriod       = errors.New("período inválido")
	ErrInvalidSource       = errors.New("origem de métrica inválida")
	ErrInvalidReportPeriod = errors.New("período de relatório inválido, use mm-yyyy")

	// Erros de consulta
	ErrReportNotFound = errors.New("relatório mensal não encontrado")
	ErrFetchRecords   = errors.New("erro ao buscar registros no backend")
	ErrFetchReports   = errors.New("erro ao buscar relatórios no banco de dados")
)

// AnalyticsError carrega o código de erro da API junto do erro base
type AnalyticsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewAnalyticsError(err error, code string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// CodeOf devolve o código de API do erro, ou erro interno quando ele não é um AnalyticsError
func CodeOf(err error) string {
	var analyticsErr *AnalyticsError
	if errors.As(err, &analyticsErr) && analyticsErr.Code != "" {
		return analyticsErr.Code
	}
	return apiErrors.ErrInternalServer
}
