package jobs

import (
	"movie-rental-backend/internal/config"
	"movie-rental-backend/internal/logger"
	"movie-rental-backend/internal/repository"
)

// JobRunner holds the dependencies shared by all scheduled jobs.
type JobRunner struct {
	rentalRepo repository.RentalRepository
	cfg        *config.Config
}

func NewJobRunner(rentalRepo repository.RentalRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{rentalRepo: rentalRepo, cfg: cfg}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.cfg
}

// runWithRecovery keeps a panicking job from taking down the scheduler.
func (jr *JobRunner) runWithRecovery(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panicked", "job", name, "panic", r)
		}
	}()
	logger.Info("job started", "job", name)
	fn()
	logger.Info("job finished", "job", name)
}
