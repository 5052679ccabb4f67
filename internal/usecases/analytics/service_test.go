package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/backend"
	backendmocks "github.com/vfg2006/business-dashboard-api/infrastructure/integrator/backend/mocks"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func float(v float64) *float64 { return &v }

func text(v string) *string { return &v }

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{Locale: "es-MX", Timezone: "UTC"},
		Dashboard: config.Dashboard{
			TopLimit:            5,
			MonthlySeriesMonths: 6,
			GrowthWindowDays:    30,
		},
	}
}

func newTestService(t *testing.T) (*Service, *backendmocks.MockRecordStore, *mocks.MockMonthlyRevenueReportRepository) {
	ctrl := gomock.NewController(t)
	store := backendmocks.NewMockRecordStore(ctrl)
	reportRepo := mocks.NewMockMonthlyRevenueReportRepository(ctrl)

	service := NewService(testConfig(), store, reportRepo).WithClock(func() time.Time { return fixedNow })
	return service, store, reportRepo
}

var (
	juneSales = []domain.SaleRow{
		{ID: "s1", TotalAmount: float(100), SaleDate: "2024-06-10T10:00:00Z"},
		{ID: "s2", TotalAmount: float(50), SaleDate: "2024-06-14T09:00:00Z"},
		{ID: "s3", TotalAmount: float(75), SaleDate: "2024-05-20T12:00:00Z"},
		{ID: "s4", TotalAmount: float(30), SaleDate: ""},
	}
	juneItems = []domain.SaleItemRow{
		{Quantity: 2, Subtotal: float(15), Product: &domain.ProductRef{Name: "A"}},
		{Quantity: 2, Subtotal: float(30), Product: &domain.ProductRef{Name: "B"}},
		{Quantity: 1, Subtotal: float(5)},
	}
	juneServices = []domain.ServiceRow{
		{
			ID: "sv1", Status: domain.ServiceStatusCompleted, ServiceType: domain.CategoryRepair,
			CompletedDate: text("2024-06-12T08:00:00Z"), LaborCost: float(100), MaterialsCost: float(20),
			Technician: &domain.TechnicianRef{FullName: "Ana"},
		},
		{
			ID: "sv2", Status: domain.ServiceStatusCompleted, ServiceType: domain.CategoryInstallation,
			CompletedDate: text("2024-05-30T08:00:00Z"), LaborCost: float(500),
			Technician: &domain.TechnicianRef{FullName: "Beto"},
		},
		{ID: "sv3", Status: domain.ServiceStatusPending},
	}
	juneInvoices = []domain.InvoiceRow{
		{ID: "i1", Status: domain.InvoiceStatusPaid, Total: float(200), PaidDate: text("2024-06-05")},
		{ID: "i2", Status: domain.InvoiceStatusSent, Total: float(80)},
	}
)

func TestService_GetDashboard(t *testing.T) {
	service, store, _ := newTestService(t)

	var itemsRange backend.Range
	store.EXPECT().ListSales(gomock.Any(), gomock.Any()).Return(juneSales, nil)
	store.EXPECT().ListSaleItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r backend.Range) ([]domain.SaleItemRow, error) {
			itemsRange = r
			return juneItems, nil
		})
	store.EXPECT().ListServices(gomock.Any(), gomock.Any()).Return(juneServices, nil)
	store.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).Return(juneInvoices, nil)
	store.EXPECT().ListProducts(gomock.Any()).Return([]domain.ProductRow{
		{ID: "p1", Name: "A", Stock: 2, MinStock: 5},
		{ID: "p2", Name: "B", Stock: 10, MinStock: 5},
	}, nil)
	store.EXPECT().CountCustomers(gomock.Any()).Return(12, nil)
	store.EXPECT().CountAppointments(gomock.Any(), "scheduled").Return(3, nil)

	dashboard, err := service.GetDashboard(context.Background(), domain.PeriodMonth)
	require.NoError(t, err)

	assert.True(t, itemsRange.From.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, itemsRange.To.Equal(time.Date(2024, 6, 30, 23, 59, 59, 999999999, time.UTC)))

	stats := dashboard.Stats
	assert.Equal(t, 2, stats.TotalSales)
	assert.Equal(t, "150", stats.TotalRevenue.String())
	assert.Equal(t, "75", stats.AverageOrderValue.String())
	assert.Equal(t, 12, stats.TotalCustomers)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockProducts)
	assert.Equal(t, 3, stats.PendingAppointments)
	assert.Equal(t, 225.0, stats.RecentSalesGrowth.CurrentValue)
	assert.Equal(t, 100.0, stats.RecentSalesGrowth.PercentChange)

	assert.Equal(t, 150.0, dashboard.Sales.Revenue.CurrentValue)
	assert.Equal(t, 75.0, dashboard.Sales.Revenue.PreviousValue)
	assert.Equal(t, domain.DirectionUp, dashboard.Sales.Revenue.Direction)
	assert.Equal(t, domain.DirectionDown, dashboard.Services.Revenue.Direction)
	assert.Equal(t, 200.0, dashboard.Invoices.Revenue.CurrentValue)

	assert.Len(t, dashboard.SalesSeries, 4)
	assert.Len(t, dashboard.ServicesSeries, 4)
	require.Len(t, dashboard.MonthlyRevenue, 6)
	assert.Equal(t, "jun", dashboard.MonthlyRevenue[5].Label)
	assert.Equal(t, "150", dashboard.MonthlyRevenue[5].Total.String())
	assert.Equal(t, "75", dashboard.MonthlyRevenue[4].Total.String())

	require.Len(t, dashboard.TopProducts, 3)
	assert.Equal(t, "B", dashboard.TopProducts[0].Name)
	assert.Equal(t, "A", dashboard.TopProducts[1].Name)
	assert.Equal(t, domain.UnknownEntityName, dashboard.TopProducts[2].Name)

	require.Len(t, dashboard.TopTechnicians, 1)
	assert.Equal(t, "Ana", dashboard.TopTechnicians[0].Name)
	assert.Equal(t, "120", dashboard.TopTechnicians[0].Revenue.String())

	assert.Equal(t, fixedNow, dashboard.GeneratedAt)
}

func TestService_GetDashboard_FonteComFalha(t *testing.T) {
	service, store, _ := newTestService(t)

	store.EXPECT().ListSales(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	store.EXPECT().ListSaleItems(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	store.EXPECT().ListServices(gomock.Any(), gomock.Any()).Return(juneServices, nil)
	store.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).Return(nil, nil)
	store.EXPECT().ListProducts(gomock.Any()).Return(nil, errors.New("502"))
	store.EXPECT().CountCustomers(gomock.Any()).Return(0, errors.New("502"))
	store.EXPECT().CountAppointments(gomock.Any(), gomock.Any()).Return(4, nil)

	dashboard, err := service.GetDashboard(context.Background(), domain.PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, 0, dashboard.Stats.TotalSales)
	assert.True(t, dashboard.Stats.TotalRevenue.IsZero())
	assert.Equal(t, 0, dashboard.Stats.TotalProducts)
	assert.Equal(t, 4, dashboard.Stats.PendingAppointments)
	assert.Len(t, dashboard.SalesSeries, 7)
	assert.Empty(t, dashboard.TopProducts)
	assert.Equal(t, domain.DirectionUp, dashboard.Sales.Revenue.Direction)
}

func TestService_GetDashboard_PeriodoInvalido(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.GetDashboard(context.Background(), "quarter")

	require.ErrorIs(t, err, ErrInvalidPeriod)
	assert.Equal(t, apiErrors.ErrInvalidPeriod, CodeOf(err))
}

func TestService_GetSeries(t *testing.T) {
	tests := []struct {
		name      string
		source    domain.MetricSource
		setup     func(store *backendmocks.MockRecordStore)
		wantCode  string
		wantTotal string
	}{
		{
			name:   "vendas do ano",
			source: domain.SourceSales,
			setup: func(store *backendmocks.MockRecordStore) {
				store.EXPECT().ListSales(gomock.Any(), gomock.Any()).Return(juneSales, nil)
			},
			wantTotal: "225",
		},
		{
			name:   "serviços concluídos do ano",
			source: domain.SourceServices,
			setup: func(store *backendmocks.MockRecordStore) {
				store.EXPECT().ListServices(gomock.Any(), gomock.Any()).Return(juneServices, nil)
			},
			wantTotal: "620",
		},
		{
			name:   "faturas pagas do ano",
			source: domain.SourceInvoices,
			setup: func(store *backendmocks.MockRecordStore) {
				store.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).Return(juneInvoices, nil)
			},
			wantTotal: "200",
		},
		{
			name:   "falha no backend",
			source: domain.SourceSales,
			setup: func(store *backendmocks.MockRecordStore) {
				store.EXPECT().ListSales(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantCode: apiErrors.ErrExternalService,
		},
		{
			name:     "origem desconhecida",
			source:   "customers",
			setup:    func(*backendmocks.MockRecordStore) {},
			wantCode: apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store, _ := newTestService(t)
			tt.setup(store)

			series, err := service.GetSeries(context.Background(), tt.source, domain.PeriodYear)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, CodeOf(err))
				return
			}

			require.NoError(t, err)
			require.Len(t, series.Points, 12)
			assert.Equal(t, tt.source, series.Source)
			assert.Equal(t, tt.wantTotal, series.Points[4].Total.Add(series.Points[5].Total).String())
		})
	}
}

func TestService_GetTopProducts(t *testing.T) {
	t.Run("todo o histórico sem período", func(t *testing.T) {
		service, store, _ := newTestService(t)
		store.EXPECT().ListSaleItems(gomock.Any(), backend.Range{}).Return(juneItems, nil)

		items, err := service.GetTopProducts(context.Background(), "", 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "B", items[0].Name)
		assert.Equal(t, "A", items[1].Name)
	})

	t.Run("período inválido", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.GetTopProducts(context.Background(), "decade", 0)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("falha no backend", func(t *testing.T) {
		service, store, _ := newTestService(t)
		store.EXPECT().ListSaleItems(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := service.GetTopProducts(context.Background(), domain.PeriodDay, 0)
		require.ErrorIs(t, err, ErrFetchRecords)
		assert.Equal(t, apiErrors.ErrExternalService, CodeOf(err))
	})
}

func TestService_GetTopTechnicians(t *testing.T) {
	service, store, _ := newTestService(t)
	store.EXPECT().ListServices(gomock.Any(), gomock.Any()).Return(juneServices, nil)

	items, err := service.GetTopTechnicians(context.Background(), domain.PeriodYear, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Beto", items[0].Name)
	assert.Equal(t, "Ana", items[1].Name)
}

func TestService_Summaries(t *testing.T) {
	service, store, _ := newTestService(t)
	store.EXPECT().ListInvoices(gomock.Any(), backend.Range{}).Return(juneInvoices, nil)
	store.EXPECT().ListServices(gomock.Any(), backend.Range{}).Return(juneServices, nil)

	invoices, err := service.GetInvoiceSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, invoices.ByStatus[domain.InvoiceStatusPaid].Count)
	assert.Equal(t, "80", invoices.ByStatus[domain.InvoiceStatusSent].Amount.String())
	assert.Equal(t, 0, invoices.ByStatus[domain.InvoiceStatusDraft].Count)

	services, err := service.GetServiceSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, services.Total)
	assert.Equal(t, 2, services.ByStatus[domain.ServiceStatusCompleted])
	assert.Equal(t, 0, services.ByStatus[domain.ServiceStatusCancelled])
}

func TestService_GetMonthlyReport(t *testing.T) {
	report := &domain.MonthlyRevenueReport{ID: "abc", Period: "05-2024"}

	tests := []struct {
		name     string
		period   string
		setup    func(repo *mocks.MockMonthlyRevenueReportRepository)
		wantErr  error
		wantCode string
	}{
		{
			name:   "relatório encontrado",
			period: "05-2024",
			setup: func(repo *mocks.MockMonthlyRevenueReportRepository) {
				repo.EXPECT().GetByPeriod(gomock.Any(), "05-2024").Return(report, nil)
			},
		},
		{
			name:     "formato inválido",
			period:   "2024-05",
			setup:    func(*mocks.MockMonthlyRevenueReportRepository) {},
			wantErr:  ErrInvalidReportPeriod,
			wantCode: apiErrors.ErrInvalidPeriod,
		},
		{
			name:   "relatório inexistente",
			period: "04-2024",
			setup: func(repo *mocks.MockMonthlyRevenueReportRepository) {
				repo.EXPECT().GetByPeriod(gomock.Any(), "04-2024").Return(nil, nil)
			},
			wantErr:  ErrReportNotFound,
			wantCode: apiErrors.ErrReportNotFound,
		},
		{
			name:   "falha no banco",
			period: "03-2024",
			setup: func(repo *mocks.MockMonthlyRevenueReportRepository) {
				repo.EXPECT().GetByPeriod(gomock.Any(), "03-2024").Return(nil, errors.New("conn refused"))
			},
			wantErr:  ErrFetchReports,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, repo := newTestService(t)
			tt.setup(repo)

			got, err := service.GetMonthlyReport(context.Background(), tt.period)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, CodeOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, report, got)
		})
	}
}

func TestService_GetAvailablePeriods(t *testing.T) {
	service, _, repo := newTestService(t)
	repo.EXPECT().GetAllPeriods(gomock.Any()).Return([]string{"11-2023", "12-2023", "01-2024"}, nil)

	periods, err := service.GetAvailablePeriods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"11-2023", "12-2023", "01-2024"}, periods.Periods)
	assert.Equal(t, []string{"2023", "2024"}, periods.Years)
	assert.Equal(t, []string{"01", "11", "12"}, periods.Months)
}

func TestService_GetAvailablePeriods_Vazio(t *testing.T) {
	service, _, repo := newTestService(t)
	repo.EXPECT().GetAllPeriods(gomock.Any()).Return(nil, nil)

	periods, err := service.GetAvailablePeriods(context.Background())
	require.NoError(t, err)
	assert.Empty(t, periods.Periods)
	assert.NotNil(t, periods.Periods)
}

func TestService_BuildMonthlyReport(t *testing.T) {
	service, store, _ := newTestService(t)

	store.EXPECT().ListSales(gomock.Any(), gomock.Any()).Return(juneSales, nil)
	store.EXPECT().ListServices(gomock.Any(), gomock.Any()).Return(juneServices, nil)
	store.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).Return([]domain.InvoiceRow{
		{ID: "i3", Status: domain.InvoiceStatusPaid, Total: float(40), PaidDate: text("2024-05-31T23:00:00Z")},
	}, nil)

	report, err := service.BuildMonthlyReport(context.Background(), time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "05-2024", report.Period)
	assert.Equal(t, "75", report.Revenue.String())
	assert.Equal(t, 1, report.SalesCount)
	assert.Equal(t, "75", report.AverageTicket.String())
	assert.Equal(t, 1, report.ServicesCompleted)
	assert.Equal(t, "500", report.ServicesRevenue.String())
	assert.Equal(t, 1, report.InvoicesPaid)
	assert.Equal(t, "40", report.InvoicesAmount.String())
}

func TestService_BuildMonthlyReport_FalhaNoBackend(t *testing.T) {
	service, store, _ := newTestService(t)

	store.EXPECT().ListSales(gomock.Any(), gomock.Any()).Return(juneSales, nil)
	store.EXPECT().ListServices(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := service.BuildMonthlyReport(context.Background(), fixedNow)
	assert.Error(t, err)
}

func TestService_ProductSales(t *testing.T) {
	service, store, _ := newTestService(t)
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store.EXPECT().ListSaleItems(gomock.Any(), backend.Range{From: from, To: fixedNow}).Return(juneItems, nil)

	items, err := service.ProductSales(context.Background(), from, fixedNow)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "B", items[0].Name)
}

func TestTechnicianContributions(t *testing.T) {
	window := domain.PeriodWindow{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
	}

	contributions := technicianContributions(juneServices, window, time.UTC)

	require.Len(t, contributions, 1)
	assert.Equal(t, "Ana", contributions[0].Key)
}
