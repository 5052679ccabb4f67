package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("reporting_period", validateReportingPeriod)
	_ = v.RegisterValidation("mm_yyyy", validateMonthPeriod)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("query")
	})

	return v
}

func validateReportingPeriod(fl validator.FieldLevel) bool {
	_, err := domain.ParseReportingPeriod(fl.Field().String())
	return err == nil
}

func validateMonthPeriod(fl validator.FieldLevel) bool {
	_, err := domain.ParsePeriod(fl.Field().String(), nil)
	return err == nil
}

type DashboardQuery struct {
	Period string `query:"period" validate:"omitempty,reporting_period"`
}

type SeriesQuery struct {
	Source string `query:"source" validate:"required,oneof=sales services invoices"`
	Period string `query:"period" validate:"omitempty,reporting_period"`
}

type TopQuery struct {
	Period string `query:"period" validate:"omitempty,reporting_period"`
	Limit  int    `query:"limit" validate:"gte=0,lte=100"`
}

type ReportQuery struct {
	Period string `query:"period" validate:"required,mm_yyyy"`
}

type RankingQuery struct {
	Month string `query:"month" validate:"omitempty,mm_yyyy"`
}

// periodOrDefault devolve o período informado ou mês quando ausente
func periodOrDefault(value string) domain.ReportingPeriod {
	if value == "" {
		return domain.PeriodMonth
	}

	period, _ := domain.ParseReportingPeriod(value)
	return period
}

// parseLimit interpreta o limite opcional da query; ausente vale zero
func parseLimit(r *http.Request) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get("limit"))
	if value == "" {
		return 0, nil
	}

	return strconv.Atoi(value)
}

// validateQuery valida o DTO e escreve o erro de validação; false quando a requisição deve parar
func validateQuery(w http.ResponseWriter, dto any) bool {
	err := validate.Struct(dto)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return false
	}

	details := make(map[string]string, len(validationErrors))
	code := apiErrors.ErrInvalidRequest
	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = fieldErr.Tag()

		switch fieldErr.Tag() {
		case "required":
			code = apiErrors.ErrMissingRequiredData
		case "reporting_period", "mm_yyyy":
			code = apiErrors.ErrInvalidPeriod
		}
	}

	apiErrors.WriteError(w, code, "Parâmetros inválidos", details)
	return false
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}
