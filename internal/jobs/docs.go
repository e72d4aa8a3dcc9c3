// Package jobs provides scheduled background tasks for the kitchen display.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// AutoBumpJob serves the ready orders of every hub that has auto_bump_enabled
// once they have waited auto_bump_delay_seconds. Each hub is handled in its
// own transaction and is audited as served by "system".
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&autoBumpHandler, config.AutoBumpSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is a six-field cron spec (with seconds) read from
// AUTO_BUMP_SCHEDULE, "*/5 * * * * *" by default. A pass that is still
// running when the next one is due causes that next pass to be skipped.
package jobs
