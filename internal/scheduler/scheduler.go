package scheduler

import (
	"time"

	"movie-rental-backend/internal/jobs"
	"movie-rental-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.ReportOverdueRentals, s.jobs.ReportOverdueRentals)
	if err != nil {
		logger.Error("Failed to register ReportOverdueRentals job", "error", err)
	}
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started")
}

// Stop halts the cron scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	logger.Info("Scheduler stopped")
}
