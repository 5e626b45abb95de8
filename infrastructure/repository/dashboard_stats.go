// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"golang.org/x/time/rate"
)

const dashboardStatsFunction = "get_dashboard_stats(?, ?, ?, ?)"

// DashboardStatsRepository executa a consulta de agregação do dashboard
type DashboardStatsRepository interface {
	GetDashboardStats(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardStatsPayload, error)
}

type dashboardStatsRepository struct {
	conn    postgres.Queryer
	limiter *rate.Limiter
}

// NewDashboardStatsRepository cria o repositório. ratePerSecond <= 0 desliga o limitador.
func NewDashboardStatsRepository(conn postgres.Queryer, ratePerSecond float64, burst int) DashboardStatsRepository {
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	if burst <= 0 {
		burst = 1
	}

	return &dashboardStatsRepository{
		conn:    conn,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (r *dashboardStatsRepository) GetDashboardStats(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardStatsPayload, error) {
	query, args, err := dashboardStatsQuery(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "aguardando limite de chamadas")
	}

	var raw []byte
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return domain.DecodeDashboardStats(nil)
		}
		return nil, wrapPQError(err, "erro ao executar get_dashboard_stats")
	}

	payload, err := domain.DecodeDashboardStats(raw)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return payload, nil
}

// dashboardStatsQuery monta SELECT get_dashboard_stats($1, $2, $3, $4) com os
// parâmetros filter_start_date, filter_end_date, filter_country, dataset_size
func dashboardStatsQuery(filter domain.DashboardFilter) (string, []interface{}, error) {
	return squirrel.
		Select().
		Column(squirrel.Expr(dashboardStatsFunction, filter.QueryArgs()...)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func wrapPQError(err error, msg string) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return errors.Wrapf(pqErr, "%s (código: %s)", msg, pqErr.Code)
	}
	return errors.Wrap(err, msg)
}
