package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reminderJob *DeadlineReminderJob
	sheetsJob   *SheetsExportJob
}

// NewJobManager creates a job manager. sheetsJob is nil when the spreadsheet export
// is not configured.
func NewJobManager(reminderJob *DeadlineReminderJob, sheetsJob *SheetsExportJob) *JobManager {
	return &JobManager{reminderJob: reminderJob, sheetsJob: sheetsJob}
}

func (jm *JobManager) jobs() []job {
	jobs := []job{jm.reminderJob}
	if jm.sheetsJob != nil {
		jobs = append(jobs, jm.sheetsJob)
	}
	return jobs
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	var started []job
	for _, j := range jm.jobs() {
		if err := j.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, s := range started {
				s.Stop()
			}
			return fmt.Errorf("failed to start %T: %w", j, err)
		}
		started = append(started, j)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs() {
		j.Stop()
	}
}
