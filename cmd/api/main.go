package main

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/retail-dashboard-api/internal/api"
	"github.com/vfg2006/retail-dashboard-api/internal/api/handler"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/scheduler"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
	"github.com/vfg2006/retail-dashboard-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	var (
		source  repository.DashboardStatsRepository
		catalog cataloging.Cataloger
	)

	pgConn := pgconn(ctx, cfg)
	if pgConn != nil {
		defer pgConn.Close()
		catalog = cataloging.NewService(repository.NewSalesRepository(pgConn))
	}

	switch cfg.Upstream.Source {
	case config.SourceWorkbook:
		source = dataset.NewWorkbookSource(cfg.Upstream.WorkbookPath)
		log.L.WithField("path", cfg.Upstream.WorkbookPath).Info("Usando planilha como fonte do dashboard")
	default:
		if pgConn == nil {
			log.L.Fatal("PostgreSQL é obrigatório quando DATA_SOURCE=postgres")
		}
		source = repository.NewDashboardStatsRepository(pgConn, cfg.Upstream.RateLimit, cfg.Upstream.RateBurst)
	}

	dashboardCache, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		log.L.WithError(err).Warn("Cache indisponível, seguindo sem cache")
		dashboardCache = cache.NewNoopCache()
	}
	defer closeQuietly(dashboardCache)

	dashboardService := dashboarding.NewService(cfg, source, dashboardCache, m)

	warmupService := scheduler.NewDashboardWarmupService(dashboardService, m, cfg)
	if err := warmupService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de cache")
	}

	server, err := api.New(cfg, api.Dependencies{
		Dashboard: dashboardService,
		Catalog:   catalog,
		CronJobs:  handler.CronJobServices{DashboardWarmupService: warmupService},
		Registry:  registry,
		Metrics:   m,
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn abre a conexão com o banco. Com a planilha como fonte o banco é
// opcional e uma falha só desliga as rotas de catálogo.
func pgconn(ctx context.Context, cfg *config.Config) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		if cfg.Upstream.Source == config.SourceWorkbook {
			log.L.WithError(err).Warn("PostgreSQL indisponível, rotas de catálogo desativadas")
			return nil
		}
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		log.L.WithError(err).Warn("Erro ao fechar recurso")
	}
}
