package bootstrap

import (
	"context"
	"log/slog"

	"fieldbook/internal/jobs"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/errs"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var CronModule = fx.Module("cron",
	fx.Provide(
		jobs.NewReconciler,
	),
	fx.Invoke(scheduleJobs),
)

func scheduleJobs(lc fx.Lifecycle, cfg config.Config, reconciler *jobs.Reconciler, logger *slog.Logger) error {
	if !cfg.Audit.Enabled {
		logger.Info("audit reconciliation cron disabled")
		return nil
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(cfg.Audit.Schedule, func() {
		reconciler.Run(context.Background())
	})
	if err != nil {
		return errs.Wrap(err, "invalid AUDIT_CRON_SCHEDULE")
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			scheduler.Start()
			logger.Info("audit reconciliation cron started", "schedule", cfg.Audit.Schedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := scheduler.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return nil
}
