package dashboarding

import (
	"context"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

// Dashboarder resolve os dados do dashboard para um conjunto de filtros
type Dashboarder interface {
	// GetDashboard retorna o resultado do cache ou, em caso de miss, da consulta de agregação
	GetDashboard(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardResult, error)
}
