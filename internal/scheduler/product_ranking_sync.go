package scheduler

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/business-dashboard-api/pkg/metrics"
)

const productRankingJob = "product_ranking"

type ProductRankingSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Limit        int
}

// ProductRankingSyncService grava diariamente o ranking de produtos do mês de ontem,
// comparando as posições com o ranking gravado na execução anterior
type ProductRankingSyncService struct {
	scheduler   *gocron.Scheduler
	analyzer    analytics.Analyzer
	rankingRepo repository.ProductRankingRepository
	config      ProductRankingSyncConfig
	state       syncState
}

func NewProductRankingSyncService(
	analyzer analytics.Analyzer,
	rankingRepo repository.ProductRankingRepository,
	cfg *config.Config,
) *ProductRankingSyncService {
	rankingConfig := ProductRankingSyncConfig{
		CronSchedule: cfg.ProductRankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.ProductRankingSync.Enabled,
		Limit:        cfg.ProductRankingSync.Limit,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rankingConfig.CronSchedule,
		"limit":         rankingConfig.Limit,
	}).Info("Configuração do agendador do ranking de produtos carregada")

	return &ProductRankingSyncService{
		scheduler:   gocron.NewScheduler(cfg.App.Location()),
		analyzer:    analyzer,
		rankingRepo: rankingRepo,
		config:      rankingConfig,
	}
}

func (s *ProductRankingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do ranking de produtos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do ranking de produtos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateProductRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de produtos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking de produtos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de produtos")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ProductRankingSyncService) UpdateProductRanking(ctx context.Context) error {
	if !s.state.begin(time.Now()) {
		logrus.Warn("Atualização do ranking de produtos já está em execução")
		return ErrSyncAlreadyRunning
	}

	return s.run(ctx)
}

func (s *ProductRankingSyncService) run(ctx context.Context) (err error) {
	defer func() {
		s.state.finish(time.Now(), err)
		metrics.IncSchedulerRun(productRankingJob, err == nil)
	}()

	logrus.Info("Iniciando atualização do ranking de produtos")

	if _, err = s.processProductRanking(ctx, s.analyzer.Now()); err != nil {
		return err
	}

	logrus.Info("Atualização do ranking de produtos concluída")
	return nil
}

// processProductRanking recalcula o ranking do mês de ontem, do primeiro dia do mês até o fim de ontem
func (s *ProductRankingSyncService) processProductRanking(ctx context.Context, processingDate time.Time) ([]*domain.ProductRankingItem, error) {
	today := time.Date(processingDate.Year(), processingDate.Month(), processingDate.Day(), 0, 0, 0, 0, processingDate.Location())
	yesterday := today.AddDate(0, 0, -1)
	firstDayOfMonth := getFirstDayOfMonth(yesterday)
	month := domain.FormatPeriod(yesterday)

	logrus.WithFields(logrus.Fields{
		"month":      month,
		"start_date": firstDayOfMonth.Format(time.DateOnly),
		"end_date":   yesterday.Format(time.DateOnly),
	}).Info("ProductRankingSyncService: buscando vendas por produto")

	rankingBeforeUpdate, err := s.rankingRepo.GetByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ranking de produtos anterior: %w", err)
	}

	sales, err := s.analyzer.ProductSales(ctx, firstDayOfMonth, today.Add(-time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por produto: %w", err)
	}

	if s.config.Limit > 0 && len(sales) > s.config.Limit {
		sales = sales[:s.config.Limit]
	}

	rankingsBefore := make(map[string]*domain.ProductRankingItem, len(rankingBeforeUpdate))
	for _, ranking := range rankingBeforeUpdate {
		rankingsBefore[ranking.ProductName] = ranking
	}

	updatedRankings := make([]*domain.ProductRankingItem, 0, len(sales))
	productNames := make([]string, 0, len(sales))
	for _, sale := range sales {
		updatedRankings = append(updatedRankings, &domain.ProductRankingItem{
			Month:       month,
			ProductName: sale.Name,
			Quantity:    sale.Quantity,
			Revenue:     sale.Revenue,
		})
		productNames = append(productNames, sale.Name)
	}

	updatePositions(updatedRankings, rankingsBefore)

	if err := s.rankingRepo.SaveOrUpdateProductRanking(ctx, updatedRankings); err != nil {
		return nil, fmt.Errorf("erro ao salvar ranking de produtos: %w", err)
	}

	removed, err := s.rankingRepo.DeleteOutsideRanking(ctx, month, productNames)
	if err != nil {
		return nil, fmt.Errorf("erro ao remover produtos fora do ranking: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"month":    month,
		"products": len(updatedRankings),
		"removed":  removed,
	}).Info("Ranking de produtos atualizado")

	return updatedRankings, nil
}

// updatePositions ordena por receita e compara com a posição gravada anteriormente.
// Mudança positiva significa que o produto subiu.
func updatePositions(
	updatedRankings []*domain.ProductRankingItem,
	rankingsBeforeUpdate map[string]*domain.ProductRankingItem,
) {
	sort.SliceStable(updatedRankings, func(i, j int) bool {
		return updatedRankings[i].Revenue.GreaterThan(updatedRankings[j].Revenue)
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1

		if rankingBefore, exists := rankingsBeforeUpdate[ranking.ProductName]; exists && rankingBefore.Position > 0 {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}

// TriggerManualSync inicia manualmente a atualização do ranking de produtos
func (s *ProductRankingSyncService) TriggerManualSync() error {
	if !s.state.begin(time.Now()) {
		logrus.Info("Atualização do ranking de produtos já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	logrus.Info("Iniciando atualização manual do ranking de produtos")
	go func() {
		if err := s.run(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de produtos")
		}
	}()

	return nil
}

func (s *ProductRankingSyncService) IsRunning() bool {
	return s.state.running()
}

// GetStatus retorna o status atual do agendador
func (s *ProductRankingSyncService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	status["limit"] = s.config.Limit
	return status
}

func getFirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
