package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/business-dashboard-api/pkg/metrics"
)

// Metrics registra contagem e duração das requisições usando o padrão da rota como rótulo
func Metrics(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			metrics.ObserveHTTPRequest(r.Method, route, lrw.statusCode, time.Since(start))
		})
	}
}
