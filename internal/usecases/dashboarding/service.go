package dashboarding

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
	"github.com/vfg2006/retail-dashboard-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errNullCacheEntry = errors.New("entrada de cache vazia (null)")

const (
	DefaultCacheTTL        = 300 * time.Second
	defaultCacheTimeout    = 2 * time.Second
	defaultUpstreamTimeout = 15 * time.Second
)

// Service é o fetcher cache-aside do dashboard
type Service struct {
	source          repository.DashboardStatsRepository
	sourceName      string
	cache           cache.Cache
	metrics         *metrics.Metrics
	ttl             time.Duration
	cacheTimeout    time.Duration
	upstreamTimeout time.Duration
	deriveOptions   DeriveOptions
}

// NewService cria o serviço. Um cache nil equivale a cache desligado.
func NewService(
	cfg *config.Config,
	source repository.DashboardStatsRepository,
	c cache.Cache,
	m *metrics.Metrics,
) *Service {
	if c == nil {
		c = cache.NewNoopCache()
	}

	s := &Service{
		source:          source,
		sourceName:      cfg.Upstream.Source,
		cache:           c,
		metrics:         m,
		ttl:             cfg.Cache.TTL,
		cacheTimeout:    cfg.Cache.Timeout,
		upstreamTimeout: cfg.Upstream.Timeout,
		deriveOptions: DeriveOptions{
			ForecastHorizon: cfg.Dashboard.ForecastHorizon,
			Regional: RegionalResolver{
				DomesticCountry: cfg.Dashboard.DomesticCountry,
				Disabled:        !cfg.Dashboard.RegionalFallbackEnabled,
			},
		},
	}

	if s.ttl <= 0 {
		s.ttl = DefaultCacheTTL
	}
	if s.cacheTimeout <= 0 {
		s.cacheTimeout = defaultCacheTimeout
	}
	if s.upstreamTimeout <= 0 {
		s.upstreamTimeout = defaultUpstreamTimeout
	}
	if s.sourceName == "" {
		s.sourceName = config.SourcePostgres
	}

	return s
}

// GetDashboard resolve o filtro em cache-aside. Um hit volta sem alteração.
// Num miss roda a consulta de agregação, deriva o resultado e grava com o TTL
// do cache. Falha de cache nunca derruba a requisição; falha do upstream volta
// como *domain.DataFetchError.
//
// Misses concorrentes para a mesma chave não são agrupados; vence a última escrita.
func (s *Service) GetDashboard(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardResult, error) {
	filter = filter.Normalize()
	key := filter.CacheKey()

	logger := log.ForContext(ctx).WithField("cache_key", key)

	if cached, ok := s.readCache(ctx, key, logger); ok {
		s.metrics.RecordCacheHit()
		logger.Debug("dashboard: resultado servido do cache")
		return cached, nil
	}
	s.metrics.RecordCacheMiss()

	payload, err := s.fetch(ctx, filter)
	if err != nil {
		logger.WithError(err).Error("dashboard: falha na consulta de agregação")
		return nil, err
	}

	result := Derive(payload, filter, s.deriveOptions)

	s.writeCache(ctx, key, result, logger)

	return result, nil
}

func (s *Service) fetch(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardStatsPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, s.upstreamTimeout)
	defer cancel()

	start := time.Now()
	payload, err := s.source.GetDashboardStats(ctx, filter)
	if err == nil && payload != nil && payload.Error != nil {
		err = payload.Error
	}

	if err != nil {
		s.metrics.RecordUpstreamCall(s.sourceName, "error", time.Since(start))
		return nil, &domain.DataFetchError{Source: s.sourceName, Err: err}
	}

	s.metrics.RecordUpstreamCall(s.sourceName, "ok", time.Since(start))
	return payload, nil
}

// readCache trata qualquer falha como miss
func (s *Service) readCache(ctx context.Context, key string, logger log.Logger) (*domain.DashboardResult, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.cacheTimeout)
	defer cancel()

	raw, err := s.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrMiss) {
		return nil, false
	}
	if err != nil {
		s.cacheFailure("get", key, err, logger)
		return nil, false
	}

	var result *domain.DashboardResult
	if err := json.Unmarshal(raw, &result); err != nil {
		s.cacheFailure("decode", key, err, logger)
		return nil, false
	}
	if result == nil {
		// "null" decodifica sem erro mas não é um resultado
		s.cacheFailure("decode", key, errNullCacheEntry, logger)
		return nil, false
	}

	return result, true
}

// writeCache é best-effort e sobrevive ao cancelamento da requisição
func (s *Service) writeCache(ctx context.Context, key string, result *domain.DashboardResult, logger log.Logger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cacheTimeout)
	defer cancel()

	raw, err := json.Marshal(result)
	if err != nil {
		s.cacheFailure("encode", key, err, logger)
		return
	}

	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.cacheFailure("set", key, err, logger)
	}
}

func (s *Service) cacheFailure(op, key string, err error, logger log.Logger) {
	s.metrics.RecordCacheError(op)
	logger.WithError(&domain.CacheError{Op: op, Key: key, Err: err}).Warn("dashboard: cache indisponível, seguindo sem cache")
}
