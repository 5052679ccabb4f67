package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/business-dashboard-api/internal/scheduler"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeProductRanking = "product-ranking"
	CronJobTypeMonthlyRevenue = "monthly-revenue"
	CronJobTypeAll            = "all"
)

// CronJob é uma sincronização agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ProductRankingSyncService CronJob
	MonthlyRevenueSyncService CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob, 2)
	if s.ProductRankingSyncService != nil {
		jobs[CronJobTypeProductRanking] = s.ProductRankingSyncService
	}
	if s.MonthlyRevenueSyncService != nil {
		jobs[CronJobTypeMonthlyRevenue] = s.MonthlyRevenueSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		switch cronType {
		case CronJobTypeProductRanking, CronJobTypeMonthlyRevenue:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Serviço de sincronização não disponível", nil)
				return
			}

			if err := job.TriggerManualSync(); err != nil {
				if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
					apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyActive, "Sincronização já em execução", nil)
					return
				}

				logger.WithError(err).WithField("job", cronType).Error("Erro ao iniciar cron job")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
				return
			}

		case CronJobTypeAll:
			started := make(map[string]bool, len(jobs))
			for name, job := range jobs {
				err := job.TriggerManualSync()
				started[name] = err == nil
				if err != nil {
					logger.WithError(err).WithField("job", name).Warn("Cron job não iniciada")
				}
			}

			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"message": "Cron jobs disparadas",
				"type":    cronType,
				"started": started,
			})
			return

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: product-ranking, monthly-revenue, all", nil)
			return
		}

		logger.WithField("job", cronType).Info("Cron job iniciada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, 2)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
