package handler

import (
	"net/http"

	"github.com/vfg2006/retail-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Catalog(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/countries",
			Method:  http.MethodGet,
			Handler: ListCountries(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales/latest",
			Method:  http.MethodGet,
			Handler: LatestSales(service),
		},
		{
			Path:    "/v1/products/by-country",
			Method:  http.MethodGet,
			Handler: TopProductsByCountry(service),
		},
		{
			Path:    "/v1/products/stats",
			Method:  http.MethodGet,
			Handler: ProductStats(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

// Metrics expõe o handler do prometheus
func Metrics(h http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: h,
		},
	}
}
