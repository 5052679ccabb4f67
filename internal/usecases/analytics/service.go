package analytics

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/backend"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/internal/aggregator"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/metrics"
)

const scheduledAppointmentStatus = "scheduled"

// Analyzer monta as visões analíticas a partir dos registros do backend e dos
// relatórios mensais armazenados
type Analyzer interface {
	GetDashboard(ctx context.Context, period domain.ReportingPeriod) (*domain.DashboardResponse, error)
	GetSeries(ctx context.Context, source domain.MetricSource, period domain.ReportingPeriod) (*domain.SeriesResponse, error)
	// GetTopProducts considera todo o histórico quando period é vazio
	GetTopProducts(ctx context.Context, period domain.ReportingPeriod, limit int) ([]domain.RankingItem, error)
	GetTopTechnicians(ctx context.Context, period domain.ReportingPeriod, limit int) ([]domain.RankingItem, error)
	GetInvoiceSummary(ctx context.Context) (*domain.InvoiceStatusSummary, error)
	GetServiceSummary(ctx context.Context) (*domain.ServiceStatusSummary, error)
	GetMonthlyReport(ctx context.Context, period string) (*domain.MonthlyRevenueReport, error)
	GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)

	// BuildMonthlyReport fecha o mês de month sem persistir
	BuildMonthlyReport(ctx context.Context, month time.Time) (*domain.MonthlyRevenueReport, error)
	// ProductSales agrega as vendas por produto no intervalo, do maior para o menor faturamento
	ProductSales(ctx context.Context, from, to time.Time) ([]domain.RankingItem, error)
	// Now é o instante atual no fuso configurado
	Now() time.Time
}

type Service struct {
	cfg        *config.Config
	store      backend.RecordStore
	reportRepo repository.MonthlyRevenueReportRepository
	locale     aggregator.Locale
	location   *time.Location
	clock      func() time.Time
}

func NewService(
	cfg *config.Config,
	store backend.RecordStore,
	reportRepo repository.MonthlyRevenueReportRepository,
) *Service {
	return &Service{
		cfg:        cfg,
		store:      store,
		reportRepo: reportRepo,
		locale:     aggregator.LocaleFor(cfg.App.Locale),
		location:   cfg.App.Location(),
		clock:      aggregator.Now,
	}
}

// WithClock troca o relógio do serviço
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

func (s *Service) Now() time.Time {
	return s.clock().In(s.location)
}

func (s *Service) GetDashboard(ctx context.Context, period domain.ReportingPeriod) (*domain.DashboardResponse, error) {
	period, err := validPeriod(period)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	window := aggregator.ResolveWindow(period, now)
	fetchRange := s.dashboardRange(period, window, now)
	windowRange := backend.Range{From: window.Start, To: window.End}

	var (
		sales          = []domain.SaleRow{}
		saleItems      = []domain.SaleItemRow{}
		services       = []domain.ServiceRow{}
		invoices       = []domain.InvoiceRow{}
		products       = []domain.ProductRow{}
		customers      int
		pendingAppoint int
	)

	wg := sync.WaitGroup{}
	fetch(ctx, &wg, "sales", &sales, func(ctx context.Context) ([]domain.SaleRow, error) {
		return s.store.ListSales(ctx, fetchRange)
	})
	fetch(ctx, &wg, "sale_items", &saleItems, func(ctx context.Context) ([]domain.SaleItemRow, error) {
		return s.store.ListSaleItems(ctx, windowRange)
	})
	fetch(ctx, &wg, "services", &services, func(ctx context.Context) ([]domain.ServiceRow, error) {
		return s.store.ListServices(ctx, fetchRange)
	})
	fetch(ctx, &wg, "invoices", &invoices, func(ctx context.Context) ([]domain.InvoiceRow, error) {
		return s.store.ListInvoices(ctx, fetchRange)
	})
	fetch(ctx, &wg, "products", &products, s.store.ListProducts)
	fetch(ctx, &wg, "customers", &customers, s.store.CountCustomers)
	fetch(ctx, &wg, "appointments", &pendingAppoint, func(ctx context.Context) (int, error) {
		return s.store.CountAppointments(ctx, scheduledAppointmentStatus)
	})
	wg.Wait()

	salesRecords := domain.SalesToRecords(sales, s.location)
	serviceRecords := domain.CompletedServicesToRecords(services, s.location)
	invoiceRecords := domain.PaidInvoicesToRecords(invoices, s.location)

	revenue, salesCount := aggregator.Totals(salesRecords, window.Start, window.End)
	lowStock := 0
	for _, product := range products {
		if product.IsLowStock() {
			lowStock++
		}
	}

	topLimit := s.topLimit(0)

	return &domain.DashboardResponse{
		Period: period,
		Window: window,
		Stats: domain.DashboardStats{
			TotalSales:          salesCount,
			TotalRevenue:        revenue,
			AverageOrderValue:   aggregator.AverageTicket(revenue, salesCount),
			TotalCustomers:      customers,
			TotalProducts:       len(products),
			LowStockProducts:    lowStock,
			PendingAppointments: pendingAppoint,
			RecentSalesGrowth:   aggregator.RollingGrowth(salesRecords, s.cfg.Dashboard.GrowthWindowDays, now),
		},
		Sales:          aggregator.Compare(salesRecords, period, now),
		Services:       aggregator.Compare(serviceRecords, period, now),
		Invoices:       aggregator.Compare(invoiceRecords, period, now),
		SalesSeries:    aggregator.BuildSeries(salesRecords, period, now, s.locale),
		ServicesSeries: aggregator.BuildSeries(serviceRecords, period, now, s.locale),
		MonthlyRevenue: aggregator.MonthlySeries(salesRecords, s.cfg.Dashboard.MonthlySeriesMonths, now, s.locale),
		TopProducts:    aggregator.TopN(domain.SaleItemsToContributions(saleItems), topLimit),
		TopTechnicians: aggregator.TopN(technicianContributions(services, window, s.location), topLimit),
		GeneratedAt:    now,
	}, nil
}

func (s *Service) GetSeries(ctx context.Context, source domain.MetricSource, period domain.ReportingPeriod) (*domain.SeriesResponse, error) {
	period, err := validPeriod(period)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	window := aggregator.ResolveWindow(period, now)
	seriesStart, _ := aggregator.SeriesSpan(period, now)
	r := backend.Range{From: earliest(window.PreviousStart, seriesStart), To: window.End}

	var records []domain.MetricRecord
	switch source {
	case domain.SourceSales:
		sales, err := s.store.ListSales(ctx, r)
		if err != nil {
			return nil, fetchError(err, "sales")
		}
		records = domain.SalesToRecords(sales, s.location)
	case domain.SourceServices:
		services, err := s.store.ListServices(ctx, r)
		if err != nil {
			return nil, fetchError(err, "services")
		}
		records = domain.CompletedServicesToRecords(services, s.location)
	case domain.SourceInvoices:
		invoices, err := s.store.ListInvoices(ctx, r)
		if err != nil {
			return nil, fetchError(err, "invoices")
		}
		records = domain.PaidInvoicesToRecords(invoices, s.location)
	default:
		return nil, NewAnalyticsError(ErrInvalidSource, apiErrors.ErrInvalidRequest, string(source))
	}

	return &domain.SeriesResponse{
		Source:     source,
		Period:     period,
		Comparison: aggregator.Compare(records, period, now),
		Points:     aggregator.BuildSeries(records, period, now, s.locale),
	}, nil
}

func (s *Service) GetTopProducts(ctx context.Context, period domain.ReportingPeriod, limit int) ([]domain.RankingItem, error) {
	r, err := s.rankingRange(period)
	if err != nil {
		return nil, err
	}

	items, err := s.store.ListSaleItems(ctx, r)
	if err != nil {
		return nil, fetchError(err, "sale_items")
	}

	return aggregator.TopN(domain.SaleItemsToContributions(items), s.topLimit(limit)), nil
}

func (s *Service) GetTopTechnicians(ctx context.Context, period domain.ReportingPeriod, limit int) ([]domain.RankingItem, error) {
	r, err := s.rankingRange(period)
	if err != nil {
		return nil, err
	}

	services, err := s.store.ListServices(ctx, r)
	if err != nil {
		return nil, fetchError(err, "services")
	}

	return aggregator.TopN(domain.ServicesToTechnicianContributions(services), s.topLimit(limit)), nil
}

func (s *Service) GetInvoiceSummary(ctx context.Context) (*domain.InvoiceStatusSummary, error) {
	invoices, err := s.store.ListInvoices(ctx, backend.Range{})
	if err != nil {
		return nil, fetchError(err, "invoices")
	}

	summary := domain.SummarizeInvoices(invoices)
	return &summary, nil
}

func (s *Service) GetServiceSummary(ctx context.Context) (*domain.ServiceStatusSummary, error) {
	services, err := s.store.ListServices(ctx, backend.Range{})
	if err != nil {
		return nil, fetchError(err, "services")
	}

	summary := domain.SummarizeServices(services)
	return &summary, nil
}

func (s *Service) GetMonthlyReport(ctx context.Context, period string) (*domain.MonthlyRevenueReport, error) {
	if _, err := domain.ParsePeriod(period, s.location); err != nil {
		return nil, NewAnalyticsError(ErrInvalidReportPeriod, apiErrors.ErrInvalidPeriod, period)
	}

	report, err := s.reportRepo.GetByPeriod(ctx, period)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("period", period).Error("Erro ao buscar relatório mensal")
		return nil, NewAnalyticsError(ErrFetchReports, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if report == nil {
		return nil, NewAnalyticsError(ErrReportNotFound, apiErrors.ErrReportNotFound, period)
	}

	return report, nil
}

func (s *Service) GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	periods, err := s.reportRepo.GetAllPeriods(ctx)
	if err != nil {
		return nil, NewAnalyticsError(ErrFetchReports, apiErrors.ErrDatabaseOperation, err.Error())
	}

	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)
	for _, period := range periods {
		// Formato mm-yyyy
		if len(period) == 7 {
			monthMap[period[:2]] = true
			yearMap[period[3:]] = true
		}
	}

	years := make([]string, 0, len(yearMap))
	for year := range yearMap {
		years = append(years, year)
	}
	sort.Strings(years)

	months := make([]string, 0, len(monthMap))
	for month := range monthMap {
		months = append(months, month)
	}
	sort.Strings(months)

	if periods == nil {
		periods = []string{}
	}

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}

func (s *Service) BuildMonthlyReport(ctx context.Context, month time.Time) (*domain.MonthlyRevenueReport, error) {
	window := aggregator.ResolveWindow(domain.PeriodMonth, month.In(s.location))
	r := backend.Range{From: window.Start, To: window.End}

	sales, err := s.store.ListSales(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas do mês: %w", err)
	}

	services, err := s.store.ListServices(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar serviços do mês: %w", err)
	}

	invoices, err := s.store.ListInvoices(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar faturas do mês: %w", err)
	}

	revenue, salesCount := aggregator.Totals(domain.SalesToRecords(sales, s.location), window.Start, window.End)
	servicesRevenue, servicesCompleted := aggregator.Totals(domain.CompletedServicesToRecords(services, s.location), window.Start, window.End)
	invoicesAmount, invoicesPaid := aggregator.Totals(domain.PaidInvoicesToRecords(invoices, s.location), window.Start, window.End)

	return &domain.MonthlyRevenueReport{
		Period:            domain.FormatPeriod(window.Start),
		Revenue:           revenue,
		SalesCount:        salesCount,
		AverageTicket:     aggregator.AverageTicket(revenue, salesCount),
		ServicesCompleted: servicesCompleted,
		ServicesRevenue:   servicesRevenue,
		InvoicesPaid:      invoicesPaid,
		InvoicesAmount:    invoicesAmount,
	}, nil
}

func (s *Service) ProductSales(ctx context.Context, from, to time.Time) ([]domain.RankingItem, error) {
	items, err := s.store.ListSaleItems(ctx, backend.Range{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens vendidos: %w", err)
	}

	return aggregator.RankAll(domain.SaleItemsToContributions(items)), nil
}

// dashboardRange cobre a janela anterior, os buckets da série, o gráfico mensal
// e as duas janelas do crescimento recente
func (s *Service) dashboardRange(period domain.ReportingPeriod, window domain.PeriodWindow, now time.Time) backend.Range {
	growthDays := s.cfg.Dashboard.GrowthWindowDays
	if growthDays <= 0 {
		growthDays = aggregator.DefaultGrowthWindowDays
	}

	seriesStart, _ := aggregator.SeriesSpan(period, now)
	monthlyStart, _ := aggregator.MonthlySpan(s.cfg.Dashboard.MonthlySeriesMonths, now)

	return backend.Range{
		From: earliest(window.PreviousStart, seriesStart, monthlyStart, now.AddDate(0, 0, -2*growthDays)),
		To:   window.End,
	}
}

func (s *Service) rankingRange(period domain.ReportingPeriod) (backend.Range, error) {
	if period == "" {
		return backend.Range{}, nil
	}

	period, err := validPeriod(period)
	if err != nil {
		return backend.Range{}, err
	}

	window := aggregator.ResolveWindow(period, s.Now())
	return backend.Range{From: window.Start, To: window.End}, nil
}

func (s *Service) topLimit(limit int) int {
	if limit > 0 {
		return limit
	}
	if s.cfg.Dashboard.TopLimit > 0 {
		return s.cfg.Dashboard.TopLimit
	}
	return domain.DefaultTopLimit
}

func validPeriod(period domain.ReportingPeriod) (domain.ReportingPeriod, error) {
	parsed, err := domain.ParseReportingPeriod(string(period))
	if err != nil {
		return "", NewAnalyticsError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, string(period))
	}
	return parsed, nil
}

func fetchError(err error, source string) error {
	metrics.IncSourceFailure(source)
	return NewAnalyticsError(fmt.Errorf("%w: %w", ErrFetchRecords, err), apiErrors.ErrExternalService, source)
}

// fetch busca uma fonte em paralelo; em caso de falha dst mantém o valor vazio
func fetch[T any](ctx context.Context, wg *sync.WaitGroup, source string, dst *T, fn func(context.Context) (T, error)) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		value, err := fn(ctx)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("source", source).Error("Erro ao buscar fonte do dashboard, usando valores vazios")
			metrics.IncSourceFailure(source)
			return
		}

		*dst = value
	}()
}

// technicianContributions considera apenas os serviços concluídos dentro da janela atual
func technicianContributions(services []domain.ServiceRow, window domain.PeriodWindow, loc *time.Location) []domain.RankingContribution {
	inWindow := make([]domain.ServiceRow, 0, len(services))
	for _, service := range services {
		if service.CompletedDate == nil {
			continue
		}

		completedAt, ok := domain.ParseTimestamp(*service.CompletedDate, loc)
		if ok && window.Contains(completedAt) {
			inWindow = append(inWindow, service)
		}
	}

	return domain.ServicesToTechnicianContributions(inWindow)
}

func earliest(first time.Time, others ...time.Time) time.Time {
	result := first
	for _, t := range others {
		if t.Before(result) {
			result = t
		}
	}
	return result
}
