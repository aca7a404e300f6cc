package components

import (
	"context"

	"bagtrack/internal/jobs"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewSessionSweepJob,
	),
	fx.Invoke(startSessionSweep),
)

func startSessionSweep(lc fx.Lifecycle, job *jobs.SessionSweepJob) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return job.Start()
		},
		OnStop: func(_ context.Context) error {
			job.Stop()
			return nil
		},
	})
}
