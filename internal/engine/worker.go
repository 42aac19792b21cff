package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/tartampluch/go-calendar/internal/config"
)

// RunPeriodic calls fn once immediately, then on every tick of interval and
// every receive on trigger, until ctx is done. An interval of
// config.DisabledInterval or less disables the ticker; fn then only runs on
// demand. A nil trigger is never ready.
func RunPeriodic(ctx context.Context, interval time.Duration, trigger <-chan struct{}, fn func(context.Context)) {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	fn(ctx)

	var tick <-chan time.Time
	if interval > config.DisabledInterval {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, interval)

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-trigger:
			log.Debug(config.MsgSyncReq)
			fn(ctx)

		case <-tick:
			fn(ctx)
		}
	}
}
