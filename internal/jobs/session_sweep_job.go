package jobs

import (
	"context"
	"log/slog"

	"bagtrack/internal/pkg/clock"
	"bagtrack/internal/pkg/config"
	"bagtrack/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// SessionSweepJob periodically deletes consumed and expired verification
// sessions so the table holds only live challenges.
type SessionSweepJob struct {
	sessionRepo commands.OTPSessionRepository
	clock       clock.Clock
	schedule    string
	cron        *cron.Cron
	logger      *slog.Logger
}

func NewSessionSweepJob(
	sessionRepo commands.OTPSessionRepository,
	clk clock.Clock,
	cfg config.OTPConfig,
	logger *slog.Logger,
) *SessionSweepJob {
	return &SessionSweepJob{
		sessionRepo: sessionRepo,
		clock:       clk,
		schedule:    cfg.SweepSchedule,
		cron:        cron.New(),
		logger:      logger.With("component", "session_sweep_job"),
	}
}

func (j *SessionSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("session sweep job started", "schedule", j.schedule)
	return nil
}

func (j *SessionSweepJob) Stop() {
	j.cron.Stop()
	j.logger.Info("session sweep job stopped")
}

func (j *SessionSweepJob) sweep() {
	ctx := context.Background()

	deleted, err := j.sessionRepo.DeleteDead(ctx, j.clock.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "session sweep failed", "error", err)
		return
	}
	if deleted > 0 {
		j.logger.InfoContext(ctx, "swept dead otp sessions", "deleted", deleted)
	}
}
