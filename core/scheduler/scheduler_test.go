package scheduler_test

import (
	"errors"
	"testing"
	"time"

	"asset-registry/core/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, scheduler.Validate("0 1 * * *"))
	assert.NoError(t, scheduler.Validate("@every 1h0m0s"))
	assert.Error(t, scheduler.Validate("every hour"))
}

func TestNew_RunsAndRecovers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := scheduler.New(zap.New(core))

	ran := make(chan struct{}, 1)
	_, err := c.AddFunc("@every 1s", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
		panic("boom")
	})
	require.NoError(t, err)

	c.Start()
	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
	<-c.Stop().Done()

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("panic").Len() > 0
	}, time.Second, 10*time.Millisecond)
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := scheduler.Logger(zap.New(core))

	l.Info("schedule", "entry", 1)
	l.Error(errors.New("bad"), "failed", "entry", 2)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	assert.Equal(t, "cron", logs.All()[1].LoggerName)
	assert.Equal(t, "bad", logs.All()[1].ContextMap()["error"])
}
