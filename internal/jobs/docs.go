// Package jobs provides scheduled background tasks for the ordering system.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which offers a single place to start and stop everything:
//
//	jobManager := jobs.NewJobManager(pendingBacklogHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// BacklogReportJob runs every five minutes and logs a warning for each
// restaurant holding orders that have waited too long for confirmation.
// It only reads; nudging owners based on the report is out of scope here.
package jobs
