package handler

import (
	"net/http"

	"github.com/vfg2006/business-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/business-dashboard-api/pkg/metrics"
	"github.com/vfg2006/business-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Analytics(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/series",
			Method:      http.MethodGet,
			Handler:     GetSeries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/top-products",
			Method:      http.MethodGet,
			Handler:     GetTopProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/top-technicians",
			Method:      http.MethodGet,
			Handler:     GetTopTechnicians(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/analytics/invoices/summary",
			Method:      http.MethodGet,
			Handler:     GetInvoiceSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/analytics/services/summary",
			Method:      http.MethodGet,
			Handler:     GetServiceSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/report",
			Method:      http.MethodGet,
			Handler:     GetMonthlyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/analytics/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailablePeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func ProductRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products/ranking",
			Method:      http.MethodGet,
			Handler:     GetProductRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
