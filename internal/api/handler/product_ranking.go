package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/business-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/business-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

// GetProductRanking retorna o ranking de produtos gravado para o mês (mm-yyyy, padrão mês corrente)
func GetProductRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := RankingQuery{Month: r.URL.Query().Get("month")}
		if !validateQuery(w, query) {
			return
		}

		productRanking, err := service.GetProductRanking(r.Context(), query.Month)
		if err != nil {
			if errors.Is(err, ranking.ErrInvalidMonth) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar ranking de produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de produtos", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, productRanking)
	})
}
