package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

// GetDashboard retorna o dashboard completo do período (day, week, month ou year)
func GetDashboard(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := DashboardQuery{Period: r.URL.Query().Get("period")}
		if !validateQuery(w, query) {
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), periodOrDefault(query.Period))
		if err != nil {
			writeAnalyticsError(w, r, err, "Erro ao montar dashboard")
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	})
}

func GetSeries(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := SeriesQuery{
			Source: r.URL.Query().Get("source"),
			Period: r.URL.Query().Get("period"),
		}
		if !validateQuery(w, query) {
			return
		}

		series, err := service.GetSeries(r.Context(), domain.MetricSource(query.Source), periodOrDefault(query.Period))
		if err != nil {
			writeAnalyticsError(w, r, err, "Erro ao montar série")
			return
		}

		writeJSON(w, r, http.StatusOK, series)
	})
}

func GetTopProducts(service analytics.Analyzer) http.Handler {
	return topHandler(service.GetTopProducts, "Erro ao montar ranking de produtos")
}

func GetTopTechnicians(service analytics.Analyzer) http.Handler {
	return topHandler(service.GetTopTechnicians, "Erro ao montar ranking de técnicos")
}

type topFunc func(ctx context.Context, period domain.ReportingPeriod, limit int) ([]domain.RankingItem, error)

func topHandler(top topFunc, failure string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite deve ser um número inteiro", nil)
			return
		}

		query := TopQuery{Period: r.URL.Query().Get("period"), Limit: limit}
		if !validateQuery(w, query) {
			return
		}

		items, err := top(r.Context(), domain.ReportingPeriod(query.Period), query.Limit)
		if err != nil {
			writeAnalyticsError(w, r, err, failure)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"items": items,
		})
	})
}

func GetInvoiceSummary(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetInvoiceSummary(r.Context())
		if err != nil {
			writeAnalyticsError(w, r, err, "Erro ao resumir faturas")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func GetServiceSummary(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetServiceSummary(r.Context())
		if err != nil {
			writeAnalyticsError(w, r, err, "Erro ao resumir serviços")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

// GetMonthlyReport retorna o fechamento mensal armazenado para o período mm-yyyy
func GetMonthlyReport(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := ReportQuery{Period: r.URL.Query().Get("period")}
		if !validateQuery(w, query) {
			return
		}

		log.ForContext(r.Context()).WithField("period", query.Period).Info("monthly-report: buscando relatório mensal")

		report, err := service.GetMonthlyReport(r.Context(), query.Period)
		if err != nil {
			writeAnalyticsError(w, r, err, "Erro ao buscar relatório mensal")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func GetAvailablePeriods(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.GetAvailablePeriods(r.Context())
		if err != nil {
			writeAnalyticsError(w, r, err, "Erro ao buscar períodos disponíveis")
			return
		}

		writeJSON(w, r, http.StatusOK, periods)
	})
}

func writeAnalyticsError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := analytics.CodeOf(err)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		log.ForContext(r.Context()).WithError(err).Error(message)
		apiErrors.WriteError(w, code, message, nil)
		return
	}

	apiErrors.WriteError(w, code, message, err.Error())
}
