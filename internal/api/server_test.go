package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/internal/api/handler"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/analytics/mocks"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ranking"
	"go.uber.org/mock/gomock"
)

type fakeAuthenticator struct {
	claims *domain.Claims
}

func (f fakeAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, nil
}

func newTestHandler(t *testing.T, role domain.UserRole) (http.Handler, *mocks.MockAnalyzer) {
	analyzer := mocks.NewMockAnalyzer(gomock.NewController(t))
	cfg := &config.Config{Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}}}

	h := NewHandler(cfg, analyzer, ranking.NewProductRankingService(nil, nil), fakeAuthenticator{
		claims: &domain.Claims{UserRole: role},
	}, handler.CronJobServices{})

	return h, analyzer
}

func TestNewHandler_Healthcheck(t *testing.T) {
	h, _ := newTestHandler(t, domain.RoleTechnician)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestNewHandler_Metrics(t *testing.T) {
	h, _ := newTestHandler(t, domain.RoleTechnician)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNewHandler_DashboardComoNumero(t *testing.T) {
	h, analyzer := newTestHandler(t, domain.RoleTechnician)
	analyzer.EXPECT().GetDashboard(gomock.Any(), domain.PeriodMonth).Return(&domain.DashboardResponse{
		Stats: domain.DashboardStats{TotalRevenue: decimal.RequireFromString("150.5")},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_revenue":150.5`)
}

func TestNewHandler_PapelInsuficiente(t *testing.T) {
	h, _ := newTestHandler(t, domain.RoleTechnician)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/invoices/summary", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNewHandler_SemToken(t *testing.T) {
	h, _ := newTestHandler(t, domain.RoleAdmin)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/periods", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
