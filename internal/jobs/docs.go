// Package jobs provides scheduled background tasks for the moveout service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AvailableJobsDigestJob - Runs every minute to publish the current list
// of open jobs to the mover notification topic.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(availableJobsHandler, publisher, metrics, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed digest run is logged and counted; the schedule keeps going. An
// empty board publishes nothing.
package jobs
