package main

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
)

var globalFlags struct {
	Source   string
	Workbook string
	NoCache  bool
	JSON     bool
	LogLevel string
}

var rootCmd = &cobra.Command{
	Use:   "dashctl",
	Short: "Consulta o dashboard de vendas pela linha de comando",
	Long: `dashctl roda o mesmo pipeline da API (cache, agregação, forecast e
distribuição regional) e imprime o resultado em tabelas ou JSON.

  dashctl dashboard --start 2011-01-01 --end 2011-06-30 --country France
  dashctl dashboard --source workbook --size small --json
  dashctl countries`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&globalFlags.Source, "source", "", "fonte da agregação: postgres ou workbook (padrão: DATA_SOURCE)")
	pf.StringVar(&globalFlags.Workbook, "workbook", "", "caminho da planilha Online Retail (padrão: WORKBOOK_PATH)")
	pf.BoolVar(&globalFlags.NoCache, "no-cache", false, "ignora o cache e consulta a fonte diretamente")
	pf.BoolVar(&globalFlags.JSON, "json", false, "imprime o resultado em JSON")
	pf.StringVar(&globalFlags.LogLevel, "log-level", "warn", "nível de log")

	rootCmd.AddCommand(dashboardCmd, countriesCmd)
}

// deps agrupa o que os comandos precisam; Close libera conexões abertas
type deps struct {
	cfg     *config.Config
	conn    *postgres.Connection
	source  repository.DashboardStatsRepository
	cache   cache.Cache
	closers []io.Closer
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i].Close()
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}

	log.Configure(globalFlags.LogLevel)

	if globalFlags.Source != "" {
		cfg.Upstream.Source = globalFlags.Source
	}
	if globalFlags.Workbook != "" {
		cfg.Upstream.WorkbookPath = globalFlags.Workbook
	}
	if globalFlags.NoCache {
		cfg.Cache.Driver = config.CacheDriverNone
	}

	return cfg, nil
}

func buildDeps(ctx context.Context, needDatabase bool) (*deps, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	d := &deps{cfg: cfg}

	if needDatabase || cfg.Upstream.Source != config.SourceWorkbook {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, errors.Wrap(err, "connecting to postgres")
		}
		d.conn = conn
		d.closers = append(d.closers, conn)
	}

	switch cfg.Upstream.Source {
	case config.SourceWorkbook:
		d.source = dataset.NewWorkbookSource(cfg.Upstream.WorkbookPath)
	case config.SourcePostgres:
		d.source = repository.NewDashboardStatsRepository(d.conn, cfg.Upstream.RateLimit, cfg.Upstream.RateBurst)
	default:
		d.Close()
		return nil, errors.Errorf("unknown source %q (expected postgres or workbook)", cfg.Upstream.Source)
	}

	c, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		log.L.WithError(err).Warn("cache indisponível, seguindo sem cache")
		c = cache.NewNoopCache()
	}
	d.cache = c
	d.closers = append(d.closers, c)

	return d, nil
}
