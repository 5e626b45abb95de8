package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/retail-dashboard-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.App{AllowedOrigins: []string{"http://localhost:5173"}},
		Server: config.Server{Host: "localhost", Port: "0"},
	}
}

func TestNew_RequiresDashboard(t *testing.T) {
	_, err := New(testConfig(), Dependencies{})
	assert.Error(t, err)
}

func TestServer_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboarder(ctrl)
	dashboard.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(&domain.DashboardResult{}, nil)

	registry := prometheus.NewRegistry()
	srv, err := New(testConfig(), Dependencies{
		Dashboard: dashboard,
		Registry:  registry,
		Metrics:   metrics.New(registry),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	// rotas de catálogo só existem com o serviço configurado
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/countries", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/v1/dashboard",status_code="200"} 1`)
}
