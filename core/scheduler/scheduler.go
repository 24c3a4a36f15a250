package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// New creates a cron runner that logs through l.
// Schedules accept the standard five fields and descriptors such as "@every 1h".
func New(l *zap.Logger) *cron.Cron {
	cl := Logger(l)
	return cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
}

// Logger adapts a zap logger to cron.Logger.
func Logger(l *zap.Logger) cron.Logger {
	return cronLogger{s: l.Named("cron").Sugar()}
}

type cronLogger struct {
	s *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.s.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.s.Errorw(msg, append(keysAndValues, "error", err)...)
}

// Validate reports whether spec is a schedule New accepts.
func Validate(spec string) error {
	_, err := cron.ParseStandard(spec)
	return err
}
