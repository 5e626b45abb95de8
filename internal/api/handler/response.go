package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("falha ao serializar resposta")
	}
}

// writeServiceError traduz erros dos casos de uso para o envelope de apiErrors.
// Falha na consulta de agregação vira 502; o resto é erro de banco ou interno.
func writeServiceError(w http.ResponseWriter, err error, fallbackCode string) {
	var fetchErr *domain.DataFetchError
	if errors.As(err, &fetchErr) {
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível carregar os dados do dashboard", map[string]string{
			"source": fetchErr.Source,
		})
		return
	}

	apiErrors.WriteError(w, fallbackCode, err.Error(), nil)
}
