package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
	"github.com/vfg2006/retail-dashboard-api/pkg/metrics"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

// DashboardWarmupConfig representa a configuração do aquecimento do cache
type DashboardWarmupConfig struct {
	CronSchedule string
	Enabled      bool
	DatasetSizes []domain.DatasetSize
}

// DashboardWarmupService resolve periodicamente o filtro padrão de cada tamanho
// de dataset, para que o primeiro carregamento do dashboard seja um cache hit
type DashboardWarmupService struct {
	scheduler           *gocron.Scheduler
	config              DashboardWarmupConfig
	dashboarder         dashboarding.Dashboarder
	metrics             *metrics.Metrics
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastRunFailures     int
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDashboardWarmupService(
	dashboarder dashboarding.Dashboarder,
	m *metrics.Metrics,
	appConfig *config.Config,
) *DashboardWarmupService {
	warmupConfig := DashboardWarmupConfig{
		CronSchedule: appConfig.Warmup.CronSchedule,
		Enabled:      appConfig.Warmup.Enabled,
		DatasetSizes: parseDatasetSizes(appConfig.Warmup.DatasetSizes),
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"enabled":       warmupConfig.Enabled,
		"dataset_sizes": warmupConfig.DatasetSizes,
	}).Info("Configuração do aquecimento de cache carregada")

	return &DashboardWarmupService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      warmupConfig,
		dashboarder: dashboarder,
		metrics:     m,
	}
}

// parseDatasetSizes remove duplicados; lista vazia vira [medium]
func parseDatasetSizes(raw []string) []domain.DatasetSize {
	seen := make(map[domain.DatasetSize]bool)
	sizes := make([]domain.DatasetSize, 0, len(raw))

	for _, r := range raw {
		size := domain.ParseDatasetSize(r)
		if !seen[size] {
			seen[size] = true
			sizes = append(sizes, size)
		}
	}

	if len(sizes) == 0 {
		sizes = append(sizes, domain.DefaultDatasetSize)
	}
	return sizes
}

// Start inicia o agendador
func (s *DashboardWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Aquecimento de cache desabilitado por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmUp(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de aquecimento de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// claim marca um aquecimento como em andamento. Retorna false se já houver um.
func (s *DashboardWarmupService) claim() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

// warmUp é a execução agendada; ignora o disparo se outro aquecimento estiver rodando
func (s *DashboardWarmupService) warmUp(ctx context.Context) {
	if !s.claim() {
		s.metrics.RecordWarmupRun("skipped")
		log.L.Info("Aquecimento de cache já em andamento, ignorando")
		return
	}
	s.run(ctx)
}

// run resolve o filtro padrão de cada tamanho configurado. Exige claim prévio.
func (s *DashboardWarmupService) run(ctx context.Context) {
	runID, err := utils.NewRunID()
	if err != nil {
		runID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	startTime := time.Now()
	s.syncMutex.Lock()
	s.lastRunID = runID
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	failures := 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastRunFailures = failures
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	ctx = context.WithValue(ctx, log.CorrelationIDKey, runID)
	logger := log.ForContext(ctx)

	logger.WithField("dataset_sizes", s.config.DatasetSizes).Info("Iniciando aquecimento de cache do dashboard")

	for _, size := range s.config.DatasetSizes {
		if ctx.Err() != nil {
			break
		}

		if _, err := s.dashboarder.GetDashboard(ctx, domain.DashboardFilter{DatasetSize: size}); err != nil {
			failures++
			logger.WithError(err).WithField("dataset_size", size).Error("Erro ao aquecer cache do dashboard")
			continue
		}
	}

	status := "ok"
	if failures > 0 {
		status = "error"
	}
	s.metrics.RecordWarmupRun(status)

	logger.WithFields(log.Fields{
		"duration": time.Since(startTime).String(),
		"failures": failures,
	}).Info("Aquecimento de cache concluído")
}

// TriggerManualSync inicia manualmente um aquecimento. Retorna false se já houver um em andamento.
func (s *DashboardWarmupService) TriggerManualSync() bool {
	if !s.claim() {
		log.L.Info("Aquecimento de cache já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando aquecimento manual de cache")
	go s.run(context.Background())
	return true
}

// GetStatus retorna o status atual do aquecimento
func (s *DashboardWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"dataset_sizes":          s.config.DatasetSizes,
		"last_run_id":            s.lastRunID,
		"last_run_failures":      s.lastRunFailures,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
