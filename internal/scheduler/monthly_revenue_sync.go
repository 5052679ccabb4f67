package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/business-dashboard-api/pkg/metrics"
)

const monthlyRevenueJob = "monthly_revenue"

// MonthlyRevenueSyncConfig representa a configuração do fechamento mensal
type MonthlyRevenueSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// MonthlyRevenueSyncService fecha os meses anteriores e grava os relatórios mensais
type MonthlyRevenueSyncService struct {
	scheduler  *gocron.Scheduler
	config     MonthlyRevenueSyncConfig
	analyzer   analytics.Analyzer
	reportRepo repository.MonthlyRevenueReportRepository
	state      syncState
}

func NewMonthlyRevenueSyncService(
	analyzer analytics.Analyzer,
	reportRepo repository.MonthlyRevenueReportRepository,
	cfg *config.Config,
) *MonthlyRevenueSyncService {
	revenueConfig := MonthlyRevenueSyncConfig{
		CronSchedule:  cfg.MonthlyRevenueSync.CronSchedule,
		SyncEnabled:   cfg.MonthlyRevenueSync.Enabled,
		MonthLookBack: cfg.MonthlyRevenueSync.MonthLookBack,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   revenueConfig.CronSchedule,
		"month_look_back": revenueConfig.MonthLookBack,
		"sync_enabled":    revenueConfig.SyncEnabled,
	}).Info("Configuração do agendador de fechamento mensal carregada")

	return &MonthlyRevenueSyncService{
		scheduler:  gocron.NewScheduler(cfg.App.Location()),
		config:     revenueConfig,
		analyzer:   analyzer,
		reportRepo: reportRepo,
	}
}

// Start inicia o agendador
func (s *MonthlyRevenueSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento mensal de receita desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fechamento mensal de receita")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncMonthlyRevenue(ctx); err != nil {
			logrus.WithError(err).Error("Erro no fechamento mensal de receita")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento mensal de receita: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fechamento mensal de receita")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *MonthlyRevenueSyncService) SyncMonthlyRevenue(ctx context.Context) error {
	if !s.state.begin(time.Now()) {
		logrus.Info("Fechamento mensal de receita já em andamento, ignorando")
		return ErrSyncAlreadyRunning
	}

	return s.run(ctx)
}

func (s *MonthlyRevenueSyncService) run(ctx context.Context) (err error) {
	startTime := time.Now()
	defer func() {
		s.state.finish(time.Now(), err)
		metrics.IncSchedulerRun(monthlyRevenueJob, err == nil)
	}()

	months := s.monthsToClose(s.analyzer.Now())
	logrus.WithField("months", len(months)).Info("Iniciando fechamento mensal de receita")

	err = s.processMonthlyReports(ctx, months)

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
	}).Info("Fechamento mensal de receita concluído")

	return err
}

// monthsToClose devolve o primeiro dia de cada um dos últimos MonthLookBack meses fechados
func (s *MonthlyRevenueSyncService) monthsToClose(now time.Time) []time.Time {
	lookBack := s.config.MonthLookBack
	if lookBack <= 0 {
		lookBack = 1
	}

	currentMonth := getFirstDayOfMonth(now)
	months := make([]time.Time, 0, lookBack)
	for i := lookBack; i >= 1; i-- {
		months = append(months, currentMonth.AddDate(0, -i, 0))
	}

	return months
}

// processMonthlyReports segue para o próximo mês quando um fechamento falha
func (s *MonthlyRevenueSyncService) processMonthlyReports(ctx context.Context, months []time.Time) error {
	var errs []error
	for _, month := range months {
		period := domain.FormatPeriod(month)

		report, err := s.analyzer.BuildMonthlyReport(ctx, month)
		if err != nil {
			logrus.WithError(err).WithField("period", period).Error("Erro ao calcular fechamento mensal")
			errs = append(errs, fmt.Errorf("%s: %w", period, err))
			continue
		}

		if err := s.reportRepo.SaveOrUpdate(ctx, report); err != nil {
			logrus.WithError(err).WithField("period", period).Error("Erro ao salvar fechamento mensal")
			errs = append(errs, fmt.Errorf("%s: %w", period, err))
			continue
		}

		logrus.WithFields(logrus.Fields{
			"period":      period,
			"revenue":     report.Revenue.String(),
			"sales_count": report.SalesCount,
		}).Info("Fechamento mensal salvo")
	}

	return errors.Join(errs...)
}

// TriggerManualSync inicia manualmente o fechamento mensal
func (s *MonthlyRevenueSyncService) TriggerManualSync() error {
	if !s.state.begin(time.Now()) {
		logrus.Info("Fechamento mensal de receita já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	logrus.Info("Iniciando fechamento mensal de receita manual")
	go func() {
		if err := s.run(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no fechamento mensal de receita manual")
		}
	}()

	return nil
}

func (s *MonthlyRevenueSyncService) IsRunning() bool {
	return s.state.running()
}

// GetStatus retorna o status atual do agendador
func (s *MonthlyRevenueSyncService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	status["month_look_back"] = s.config.MonthLookBack
	return status
}
