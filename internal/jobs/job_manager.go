package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoBumpJob *AutoBumpJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(autoBumper AutoBumper, autoBumpSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		autoBumpJob: NewAutoBumpJob(autoBumper, autoBumpSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.autoBumpJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto bump job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoBumpJob.Stop()
}
