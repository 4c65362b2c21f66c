package jobs

import (
	"fmt"
	"log/slog"

	"moveout/internal/core/application/usecases/queries"
	"moveout/internal/core/ports"
	"moveout/internal/observability"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	availableJobsDigestJob *AvailableJobsDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	availableJobsHandler queries.GetAvailableJobsQueryHandler,
	publisher ports.NotificationPublisher,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		availableJobsDigestJob: NewAvailableJobsDigestJob(
			availableJobsHandler, publisher, metrics, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.availableJobsDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start available jobs digest: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.availableJobsDigestJob.Stop()
}
