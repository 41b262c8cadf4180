// Package worker runs the background expiry sweep: published jobs past
// their expiresAt are closed and club vacancy counters are resynced.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"scoutline-backend/internal/domain"
	"scoutline-backend/pkg/logger"
)

// ExpirySweeper wraps robfig/cron and manages the sweep loop.
type ExpirySweeper struct {
	cron     *cron.Cron
	jobRepo  domain.JobRepository
	clubRepo domain.ClubRepository
	spec     string // cron spec, e.g. "@every 1h"
}

func NewExpirySweeper(jobRepo domain.JobRepository, clubRepo domain.ClubRepository, spec string) *ExpirySweeper {
	return &ExpirySweeper{
		cron:     cron.New(),
		jobRepo:  jobRepo,
		clubRepo: clubRepo,
		spec:     spec,
	}
}

// Start registers the sweep and starts the scheduler. One sweep also runs
// immediately so a restart does not leave expired jobs open until the
// first tick.
func (s *ExpirySweeper) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	logger.Log.Info("expiry sweeper started", "spec", s.spec)

	go s.sweep(ctx)

	return nil
}

// Stop shuts the scheduler down. Blocks until a running sweep finishes.
func (s *ExpirySweeper) Stop() {
	<-s.cron.Stop().Done()
	logger.Log.Info("expiry sweeper stopped")
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	closed, err := s.jobRepo.CloseExpired(ctx, time.Now().UTC())
	if err != nil {
		logger.Log.Error("expiry sweep failed", "error", err)
		return
	}

	if closed == 0 {
		return
	}

	logger.Log.Info("expired jobs closed", "count", closed)

	if err := s.clubRepo.SyncAllActiveVacancies(ctx); err != nil {
		logger.Log.Error("active vacancy resync failed", "error", err)
	}
}
