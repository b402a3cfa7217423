package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Refresher is the unit of work a Poller drives on every tick.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshFunc adapts a bare function to Refresher.
type RefreshFunc func(ctx context.Context) error

func (f RefreshFunc) Refresh(ctx context.Context) error { return f(ctx) }

// Poller runs a Refresher immediately on Start and then on a fixed interval.
// Start replaces any running cycle, so a restart resets the tick phase. A
// failed refresh is logged and the ticker keeps going.
type Poller struct {
	Target   Refresher
	Interval time.Duration
	Log      *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		<-p.done
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel, p.done = cancel, done
	p.mu.Unlock()

	go p.run(runCtx, done)
}

func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	interval := p.Interval
	if interval <= 0 {
		interval = 300 * time.Second
	}

	log.Info("poller_started", zap.Duration("interval", interval))
	p.tick(ctx, log)

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("poller_stopped")
			return
		case <-t.C:
			p.tick(ctx, log)
		}
	}
}

func (p *Poller) tick(ctx context.Context, log *zap.Logger) {
	if err := p.Target.Refresh(ctx); err != nil {
		log.Warn("refresh_failed", zap.Error(err))
	}
}
