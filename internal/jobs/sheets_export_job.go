package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultSheetsSchedule fires at the top of every hour.
const DefaultSheetsSchedule = "0 0 * * * *"

// ErrExportInProgress is returned by Trigger while another export is running.
var ErrExportInProgress = errors.New("sheets export already in progress")

type exportSource interface {
	Handle(ctx context.Context, query queries.ExportOrdersQuery) ([][]string, error)
}

// SheetsExportJob copies the order export into a spreadsheet, on schedule and on demand.
// At most one export runs at a time.
type SheetsExportJob struct {
	source   exportSource
	sink     ports.SpreadsheetSink
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	running  atomic.Bool
}

func NewSheetsExportJob(source exportSource, sink ports.SpreadsheetSink, schedule string, logger *slog.Logger) *SheetsExportJob {
	if schedule == "" {
		schedule = DefaultSheetsSchedule
	}
	return &SheetsExportJob{
		source:   source,
		sink:     sink,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "sheets_export_job"),
	}
}

func (j *SheetsExportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Run(context.Background()); err != nil && !errors.Is(err, ErrExportInProgress) {
			j.logger.Error("Sheets export job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sheets export job started", "schedule", j.schedule)
	return nil
}

func (j *SheetsExportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Sheets export job stopped")
}

// Trigger starts an export in the background and returns immediately.
func (j *SheetsExportJob) Trigger() error {
	if j.running.Load() {
		return ErrExportInProgress
	}
	go func() {
		if err := j.Run(context.Background()); err != nil && !errors.Is(err, ErrExportInProgress) {
			j.logger.Error("On-demand sheets export failed", "error", err)
		}
	}()
	return nil
}

// Run exports synchronously.
func (j *SheetsExportJob) Run(ctx context.Context) error {
	if !j.running.CompareAndSwap(false, true) {
		return ErrExportInProgress
	}
	defer j.running.Store(false)

	rows, err := j.source.Handle(ctx, queries.NewExportOrdersQuery())
	if err != nil {
		return err
	}
	if err := j.sink.ReplaceRows(ctx, rows); err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Orders exported to sheets", "rows", len(rows)-1)
	return nil
}
