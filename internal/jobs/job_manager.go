package jobs

import (
	"fmt"

	"wastepickup/internal/pkg/logger"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusSnapshotJob *PickupStatusSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	counter StatusCounter,
	gauge StatusGauge,
	snapshotSchedule string,
	log *logger.Logger,
) *JobManager {
	return &JobManager{
		statusSnapshotJob: NewPickupStatusSnapshotJob(counter, gauge, snapshotSchedule, log),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start pickup status snapshot job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusSnapshotJob.Stop()
}
