package handler

import (
	"net/http"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/retail-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
)

func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		filter, err := domain.ParseDashboardFilter(
			query.Get("start_date"),
			query.Get("end_date"),
			query.Get("country"),
			query.Get("dataset_size"),
		)
		if err != nil {
			// filtro inválido é descartado, a requisição segue sem ele
			logger.WithError(err).Debug("dashboard: ignorando filtros malformados")
		}

		logger.WithFields(log.Fields{
			"start_date":   domain.FormatDate(filter.StartDate),
			"end_date":     domain.FormatDate(filter.EndDate),
			"country":      filter.CountryName(),
			"dataset_size": filter.DatasetSize,
		}).Info("dashboard: buscando dados do dashboard")

		result, err := service.GetDashboard(r.Context(), filter)
		if err != nil {
			logger.WithError(err).Error("dashboard: falha ao resolver o dashboard")
			writeServiceError(w, err, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, logger, http.StatusOK, result)
	})
}
