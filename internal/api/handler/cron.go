package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/retail-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
)

const (
	CronJobTypeWarmup = "warmup"
	CronJobTypeAll    = "all"
)

// CronJob é o que os agendadores expõem para execução manual e status
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DashboardWarmupService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger.WithField("type", cronType).Info("cron: execução manual solicitada")

		switch cronType {
		case CronJobTypeWarmup, CronJobTypeAll:
			if services.DashboardWarmupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento de cache não disponível", nil)
				return
			}
			if !services.DashboardWarmupService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrConflict, "Aquecimento de cache já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: warmup, all", nil)
			return
		}

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DashboardWarmupService != nil {
			status[CronJobTypeWarmup] = services.DashboardWarmupService.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, status)
	}
}
