package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-dashboard-api/internal/api/handler"
	"github.com/vfg2006/business-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/business-dashboard-api/pkg/middleware"
)

func init() {
	// Valores monetários saem como números no JSON
	decimal.MarshalJSONWithoutQuotes = true
}

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	analyticsService analytics.Analyzer,
	rankingService ranking.RankingService,
	authenticator authenticating.Authenticator,
	cronServices handler.CronJobServices,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, analyticsService, rankingService, authenticator, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(
	config *config.Config,
	analyticsService analytics.Analyzer,
	rankingService ranking.RankingService,
	authenticator authenticating.Authenticator,
	cronServices handler.CronJobServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Analytics(analyticsService)...),
		router.WithRoutes(handler.ProductRanking(rankingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
