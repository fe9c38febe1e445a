package jobs

import (
	"context"

	"librental-backend/internal/logger"
)

// ExpireStaleSessions sweeps open payment sessions against the provider and
// marks the ones the provider has expired. Sessions the provider could not
// be reached for stay pending and are retried on the next sweep.
func (jr *JobRunner) ExpireStaleSessions() {
	jr.runWithRecovery("ExpireStaleSessions", func() {
		ctx := context.Background()

		expired, err := jr.services.Payment.DetectExpiredSessions(ctx)
		if err != nil {
			logger.Error("Failed to sweep payment sessions", "error", err)
			return
		}

		logger.Info("Payment session sweep completed", "expired_count", len(expired))
	})
}
