package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"moveout/internal/core/application/usecases/queries"
	"moveout/internal/core/ports"
	"moveout/internal/observability"
)

// AvailableJobsDigestJob periodically publishes the list of open jobs so
// mover apps can refresh their boards without polling the API. Runs once a
// minute.
type AvailableJobsDigestJob struct {
	handler   queries.GetAvailableJobsQueryHandler
	publisher ports.NotificationPublisher
	metrics   *observability.Metrics
	cron      *cron.Cron
	logger    *slog.Logger
}

type digestEvent struct {
	JobCount    int         `json:"job_count"`
	Jobs        []digestJob `json:"jobs"`
	GeneratedAt time.Time   `json:"generated_at"`
}

type digestJob struct {
	JobID         string    `json:"job_id"`
	JobType       string    `json:"job_type"`
	Volume        int       `json:"volume"`
	Price         float64   `json:"price"`
	ScheduledTime time.Time `json:"scheduled_time"`
}

// NewAvailableJobsDigestJob creates the digest publisher.
func NewAvailableJobsDigestJob(
	handler queries.GetAvailableJobsQueryHandler,
	publisher ports.NotificationPublisher,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *AvailableJobsDigestJob {
	return &AvailableJobsDigestJob{
		handler:   handler,
		publisher: publisher,
		metrics:   metrics,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "available_jobs_digest_job"),
	}
}

// Start begins the digest job to run every minute.
func (j *AvailableJobsDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		if err := j.run(context.Background()); err != nil {
			j.metrics.DigestErrorsTotal.Inc()
			j.logger.Error("available jobs digest failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Available jobs digest started (running every minute)")
	return nil
}

// Stop stops the digest job.
func (j *AvailableJobsDigestJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Available jobs digest stopped")
}

func (j *AvailableJobsDigestJob) run(ctx context.Context) error {
	jobs, err := j.handler.Handle(ctx, queries.NewGetAvailableJobsQuery())
	if err != nil {
		return err
	}

	j.metrics.DigestRunsTotal.Inc()
	j.metrics.DigestJobsGauge.Set(float64(len(jobs)))

	// Nothing open, nothing to announce.
	if len(jobs) == 0 {
		return nil
	}

	event := digestEvent{
		JobCount:    len(jobs),
		Jobs:        make([]digestJob, len(jobs)),
		GeneratedAt: time.Now().UTC(),
	}
	for i, open := range jobs {
		event.Jobs[i] = digestJob{
			JobID:         open.ID.String(),
			JobType:       open.JobType,
			Volume:        open.Volume,
			Price:         open.Price,
			ScheduledTime: open.ScheduledTime,
		}
	}

	return j.publisher.Publish(ctx, ports.TopicJobAvailable, event)
}
