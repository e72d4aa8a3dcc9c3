package jobs

import (
	"context"
	"log/slog"
	"time"

	"kds/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultAutoBumpSchedule runs the job every five seconds.
const DefaultAutoBumpSchedule = "*/5 * * * * *"

// AutoBumper serves ready orders whose auto-bump delay has passed.
type AutoBumper interface {
	Handle(ctx context.Context, cmd commands.AutoBumpReadyOrdersCommand) (int, error)
}

// AutoBumpJob serves ready orders of hubs with auto-bump enabled.
type AutoBumpJob struct {
	handler  AutoBumper
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewAutoBumpJob creates the job. schedule is a cron spec with a seconds
// field; empty means DefaultAutoBumpSchedule.
func NewAutoBumpJob(handler AutoBumper, schedule string, logger *slog.Logger) *AutoBumpJob {
	if schedule == "" {
		schedule = DefaultAutoBumpSchedule
	}
	return &AutoBumpJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "auto_bump_job"),
		now:      time.Now,
	}
}

// Start schedules the job.
func (j *AutoBumpJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto bump job started", "schedule", j.schedule)
	return nil
}

// Run executes one pass.
func (j *AutoBumpJob) Run() {
	ctx := context.Background()
	cmd := commands.NewAutoBumpReadyOrdersCommand(j.now())

	served, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Auto bump job failed", "error", err, "served", served)
		return
	}
	if served > 0 {
		j.logger.InfoContext(ctx, "Auto bump served ready orders", "served", served)
	}
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *AutoBumpJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Auto bump job stopped")
}
