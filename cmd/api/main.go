package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-dashboard-api/infrastructure/database/migrations"
	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/backend"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/internal/api"
	"github.com/vfg2006/business-dashboard-api/internal/api/handler"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/scheduler"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ranking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg)
	defer pgConn.Close()

	productRankingRepo := repository.NewProductRankingRepository(pgConn)
	monthlyRevenueReportRepo := repository.NewMonthlyRevenueReportRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	backendClient := backendclient.NewClient(cfg)
	recordStore := backend.New(backendClient)

	analyticsService := analytics.NewService(cfg, recordStore, monthlyRevenueReportRepo)
	rankingService := ranking.NewProductRankingService(productRankingRepo, cfg.App.Location())

	productRankingSyncService := scheduler.NewProductRankingSyncService(analyticsService, productRankingRepo, cfg)
	monthlyRevenueSyncService := scheduler.NewMonthlyRevenueSyncService(analyticsService, monthlyRevenueReportRepo, cfg)

	// Inicia os agendadores em background
	if err := productRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de produtos")
	} else {
		logrus.Info("Agendador do ranking de produtos iniciado com sucesso")
	}

	if err := monthlyRevenueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fechamento mensal")
	} else {
		logrus.Info("Agendador de fechamento mensal iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		rankingService,
		authenticator,
		handler.CronJobServices{
			ProductRankingSyncService: productRankingSyncService,
			MonthlyRevenueSyncService: monthlyRevenueSyncService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria a conexão com o banco de snapshots e aplica as migrações pendentes
func pgconn(ctx context.Context, cfg *config.Config) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	if cfg.Migrations.Enabled {
		if err := migrations.Up(conn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.Info("Migrações aplicadas com sucesso")
	}

	return conn
}
