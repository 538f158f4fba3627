package scheduler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/config"
	"github.com/shilohridge/backoffice/internal/repository/fallback"
	"github.com/shilohridge/backoffice/pkg/clients/farmapi"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron   *cron.Cron
	client *farmapi.Client
	store  fallback.Store
	cfg    config.Config
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, client *farmapi.Client, store fallback.Store, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(),
		client: client,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers the ticker poll and starts the cron loop. The first poll
// runs immediately so the dashboard has quotes before the first tick.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("ticker_schedule", s.cfg.Ticker.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.Ticker.CronSchedule, s.refreshTicker); err != nil {
		s.logger.Error("failed to schedule ticker refresh", zap.Error(err))
	}

	go s.refreshTicker()
	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) refreshTicker() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	quotes, err := s.client.Ticker(ctx)
	if err != nil {
		// Leave the previous cached quotes in place; the next tick retries.
		s.logger.Warn("ticker refresh failed", zap.Error(err))
		return
	}

	payload, err := json.Marshal(quotes)
	if err != nil {
		s.logger.Error("ticker marshal failed", zap.Error(err))
		return
	}
	if err := s.store.WriteCache(fallback.KeyTicker, payload); err != nil {
		s.logger.Error("ticker cache write failed", zap.Error(err))
		return
	}
	s.logger.Info("ticker refreshed", zap.Int("symbols", len(quotes)))
}
