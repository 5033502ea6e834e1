package watchdog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avoskan/taskdeck/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func stubExpired(t *testing.T, expired bool) {
	t.Helper()
	orig := isExpired
	isExpired = func(string) bool { return expired }
	t.Cleanup(func() { isExpired = orig })
}

func TestWatchdog_IdleWhileDisarmed(t *testing.T) {
	stubExpired(t, true)

	var fired atomic.Int32
	w := New(
		func(ctx context.Context) (string, error) { return "tok", nil },
		func(ctx context.Context) { fired.Add(1) },
		10*time.Millisecond, testLogger(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	assert.Zero(t, fired.Load())
}

func TestWatchdog_FiresOnceOnExpiredToken(t *testing.T) {
	stubExpired(t, true)

	var fired atomic.Int32
	w := New(
		func(ctx context.Context) (string, error) { return "tok", nil },
		func(ctx context.Context) { fired.Add(1) },
		5*time.Millisecond, testLogger(),
	)
	w.Arm()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)

	// disarmed after firing, so further ticks stay quiet
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
	assert.False(t, w.Armed())
}

func TestWatchdog_MissingTokenCountsAsExpired(t *testing.T) {
	stubExpired(t, false)

	var fired atomic.Int32
	w := New(
		func(ctx context.Context) (string, error) { return "", nil },
		func(ctx context.Context) { fired.Add(1) },
		5*time.Millisecond, testLogger(),
	)
	w.Arm()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestWatchdog_ValidTokenKeepsSession(t *testing.T) {
	stubExpired(t, false)

	var fired atomic.Int32
	w := New(
		func(ctx context.Context) (string, error) { return "tok", nil },
		func(ctx context.Context) { fired.Add(1) },
		5*time.Millisecond, testLogger(),
	)
	w.Arm()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	assert.Zero(t, fired.Load())
	assert.True(t, w.Armed())
}

func TestWatchdog_StoreErrorDoesNotEndSession(t *testing.T) {
	stubExpired(t, true)

	var fired atomic.Int32
	w := New(
		func(ctx context.Context) (string, error) { return "", errors.New("db locked") },
		func(ctx context.Context) { fired.Add(1) },
		5*time.Millisecond, testLogger(),
	)
	w.Arm()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	assert.Zero(t, fired.Load())
	assert.True(t, w.Armed())
}

func TestWatchdog_DefaultInterval(t *testing.T) {
	w := New(nil, nil, 0, testLogger())
	assert.Equal(t, DefaultInterval, w.interval)
}
