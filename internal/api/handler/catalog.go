package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/retail-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
)

const (
	productViewTop   = "top"
	productViewWorst = "worst"
)

func ListCountries(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		countries, err := service.ListCountries(r.Context())
		if err != nil {
			logger.WithError(err).Error("catalog: falha ao listar países")
			writeServiceError(w, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeJSON(w, logger, http.StatusOK, countries)
	})
}

func LatestSales(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, err := intParam(r, "limit", 0)
		if err != nil {
			logger.WithError(err).Warn("catalog: parâmetro limit inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número inteiro", nil)
			return
		}

		sales, err := service.LatestSales(r.Context(), limit)
		if err != nil {
			logger.WithError(err).Error("catalog: falha ao buscar últimas vendas")
			writeServiceError(w, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeJSON(w, logger, http.StatusOK, sales)
	})
}

func ListSales(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		page, err := intParam(r, "page", 1)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page deve ser um número inteiro", nil)
			return
		}

		pageSize, err := intParam(r, "page_size", cataloging.DefaultSalesPageSize)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page_size deve ser um número inteiro", nil)
			return
		}

		sales, err := service.ListSales(r.Context(), page, pageSize)
		if err != nil {
			logger.WithError(err).Error("catalog: falha ao listar vendas")
			writeServiceError(w, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeJSON(w, logger, http.StatusOK, sales)
	})
}

func TopProductsByCountry(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.TopProductsByCountry(r.Context())
		if err != nil {
			logger.WithError(err).Error("catalog: falha ao buscar produtos mais vendidos por país")
			writeServiceError(w, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeJSON(w, logger, http.StatusOK, products)
	})
}

func ProductStats(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		page, err := intParam(r, "page", 1)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page deve ser um número inteiro", nil)
			return
		}

		pageSize, err := intParam(r, "page_size", cataloging.DefaultProductPageSize)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page_size deve ser um número inteiro", nil)
			return
		}

		view := strings.ToLower(strings.TrimSpace(query.Get("view")))
		if view == "" {
			view = productViewTop
		}
		if view != productViewTop && view != productViewWorst {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "view inválida. Valores aceitos: top, worst", nil)
			return
		}

		excludeNegative := false
		if raw := query.Get("exclude_negative"); raw != "" {
			excludeNegative, err = strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "exclude_negative deve ser true ou false", nil)
				return
			}
		}

		stats, err := service.ProductStats(r.Context(), domain.ProductStatsQuery{
			Page:            page,
			PageSize:        pageSize,
			Search:          query.Get("search"),
			SortDesc:        view == productViewTop,
			ExcludeNegative: excludeNegative,
		})
		if err != nil {
			logger.WithError(err).Error("catalog: falha ao buscar estatísticas de produtos")
			writeServiceError(w, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeJSON(w, logger, http.StatusOK, stats)
	})
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
