package jobs

import (
	"context"
	"log/slog"
	"time"

	"printshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReminderSchedule fires at 09:00 every day.
const DefaultReminderSchedule = "0 0 9 * * *"

type reminderSender interface {
	Handle(ctx context.Context, cmd commands.SendDeadlineRemindersCommand) (int, error)
}

// DeadlineReminderJob announces the items due tomorrow that are not ready yet.
type DeadlineReminderJob struct {
	handler  reminderSender
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewDeadlineReminderJob creates the job; schedule is a six-field cron expression.
func NewDeadlineReminderJob(handler reminderSender, schedule string, logger *slog.Logger) *DeadlineReminderJob {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}
	return &DeadlineReminderJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		logger:   logger.With("component", "deadline_reminder_job"),
		now:      time.Now,
	}
}

func (j *DeadlineReminderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deadline reminder job started", "schedule", j.schedule)
	return nil
}

func (j *DeadlineReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Deadline reminder job stopped")
}

func (j *DeadlineReminderJob) run(ctx context.Context) {
	due := j.now().UTC().AddDate(0, 0, 1)
	count, err := j.handler.Handle(ctx, commands.NewSendDeadlineRemindersCommand(due))
	if err != nil {
		j.logger.ErrorContext(ctx, "Deadline reminder job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Deadline reminders processed", "due", due.Format("2006-01-02"), "items", count)
}
