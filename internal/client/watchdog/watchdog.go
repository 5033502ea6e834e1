// Package watchdog periodically re-checks the stored access token and
// forces a logout once it goes stale. The REPL keeps one watchdog for
// the whole process lifetime and arms it only while a user is signed in.
package watchdog

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/avoskan/taskdeck/internal/client/token"
	"github.com/avoskan/taskdeck/internal/logging"
)

const DefaultInterval = 30 * time.Second

// testing seam
var isExpired = token.IsExpired

// TokenFunc returns the current access token, empty if none is stored.
type TokenFunc func(ctx context.Context) (string, error)

type Watchdog struct {
	tokens   TokenFunc
	onExpire func(ctx context.Context)
	interval time.Duration
	log      logging.Logger
	armed    atomic.Bool
}

// New builds a disarmed watchdog. onExpire runs on the watchdog goroutine,
// at most once per armed period.
func New(tokens TokenFunc, onExpire func(ctx context.Context), interval time.Duration, log logging.Logger) *Watchdog {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watchdog{tokens: tokens, onExpire: onExpire, interval: interval, log: log}
}

func (w *Watchdog) Arm()    { w.armed.Store(true) }
func (w *Watchdog) Disarm() { w.armed.Store(false) }

func (w *Watchdog) Armed() bool { return w.armed.Load() }

// Run blocks until ctx is cancelled, checking the token every interval.
func (w *Watchdog) Run(ctx context.Context) {

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.check(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watchdog) check(ctx context.Context) {
	if !w.armed.Load() {
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	tok, err := w.tokens(checkCtx)
	cancel()

	if err != nil {
		w.log.Warn(ctx, "watchdog token check failed", "error", err)
		return
	}

	if tok == "" || isExpired(tok) {
		// disarm first: onExpire typically loops back into Disarm
		// via the session change handler, which must stay safe
		w.armed.Store(false)
		w.log.Info(ctx, "access token expired, ending session")
		w.onExpire(ctx)
	}
}
