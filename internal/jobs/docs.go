// Package jobs provides scheduled background tasks for the print shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use six fields, seconds first.
//
// # Available Jobs
//
// 1. DeadlineReminderJob - daily, enqueues one reminder listing the items due tomorrow
// 2. SheetsExportJob - replaces the Google spreadsheet with the order export; also
// triggered on demand from the HTTP API
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reminderJob, sheetsJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the next tick runs normally. A sheets export that
// overlaps a running one is skipped.
package jobs
