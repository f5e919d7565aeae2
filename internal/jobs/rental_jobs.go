package jobs

import (
	"context"
	"time"

	"movie-rental-backend/internal/logger"
	"movie-rental-backend/internal/utils"
)

// ReportOverdueRentals logs every rental that has been open longer than the
// configured threshold. It is read-only: stock and ledger mutations happen
// exclusively through the rental workflow.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -jr.cfg.Scheduler.OverdueAfterDays)

		rentals, err := jr.rentalRepo.ListOpenOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("failed to list overdue rentals", "error", err)
			return
		}

		logger.Info("overdue rentals", "count", len(rentals), "overdue_after_days", jr.cfg.Scheduler.OverdueAfterDays)
		for _, rt := range rentals {
			logger.Warn("rental overdue",
				"rental_id", rt.ID,
				"customer_id", rt.Customer.ID,
				"customer_name", rt.Customer.Name,
				"movie_title", rt.Movie.Title,
				"days_out", utils.DaysRented(rt.DateOut, time.Now()))
		}
	})
}
