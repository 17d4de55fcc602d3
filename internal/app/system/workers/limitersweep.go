// internal/app/system/workers/limitersweep.go
package workers

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper drops idle state and reports how many entries were removed.
// *ratelimit.Limiter satisfies it.
type Sweeper interface {
	Sweep() int
}

// LimiterSweep is a background worker that evicts idle rate-limit buckets.
type LimiterSweep struct {
	target   Sweeper
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewLimiterSweep creates a sweep worker that calls target.Sweep every
// interval once started.
func NewLimiterSweep(target Sweeper, logger *zap.Logger, interval time.Duration) *LimiterSweep {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LimiterSweep{
		target:   target,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *LimiterSweep) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("limiter sweep worker started", zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish. It is safe to
// call more than once.
func (w *LimiterSweep) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		w.log.Info("limiter sweep worker stopped")
	})
}

func (w *LimiterSweep) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *LimiterSweep) sweep() {
	if n := w.target.Sweep(); n > 0 {
		w.log.Debug("evicted idle rate-limit buckets", zap.Int("count", n))
	}
}
