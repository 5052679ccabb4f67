// Package metrics registra as métricas Prometheus da API
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dashboard"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP atendidas",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	backendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Total de chamadas à API de tabelas do backend",
		},
		[]string{"table", "status"},
	)

	backendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Duração das chamadas à API de tabelas do backend",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"table"},
	)

	sourceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_fetch_failures_total",
			Help:      "Fontes do dashboard que falharam e foram substituídas por listas vazias",
		},
		[]string{"source"},
	)

	schedulerRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduler_runs_total",
			Help:      "Execuções dos agendadores de sincronização",
		},
		[]string{"job", "status"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveBackendRequest registra uma chamada ao backend; status 0 indica falha de transporte
func ObserveBackendRequest(table string, status int, elapsed time.Duration) {
	backendRequestsTotal.WithLabelValues(table, strconv.Itoa(status)).Inc()
	backendRequestDuration.WithLabelValues(table).Observe(elapsed.Seconds())
}

func IncSourceFailure(source string) {
	sourceFailuresTotal.WithLabelValues(source).Inc()
}

func IncSchedulerRun(job string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	schedulerRunsTotal.WithLabelValues(job, status).Inc()
}
