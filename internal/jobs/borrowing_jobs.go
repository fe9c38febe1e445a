package jobs

import (
	"context"
	"time"

	"librental-backend/internal/logger"
)

// NotifyOverdueBorrowings scans for active borrowings past their expected
// return date and sends a reminder for each. The scan is read-only: fines
// are assessed when the copy actually comes back, not here.
func (jr *JobRunner) NotifyOverdueBorrowings() {
	jr.runWithRecovery("NotifyOverdueBorrowings", func() {
		ctx := context.Background()

		overdue, err := jr.services.Borrowing.ScanOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to scan overdue borrowings", "error", err)
			return
		}

		for i := range overdue {
			jr.services.Notifier.OverdueBorrowing(ctx, &overdue[i])
		}

		logger.Info("Overdue borrowing scan completed", "overdue_count", len(overdue))
	})
}
