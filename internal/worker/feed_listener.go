package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

const defaultRetryInterval = 3 * time.Second

// ChangeApplier merges order feed events into application state.
type ChangeApplier interface {
	ApplyChange(change model.OrderChange)
}

// FeedListener keeps exactly one order change subscription open and resubscribes when it drops.
type FeedListener struct {
	source  repository.ChangeSource
	applier ChangeApplier
	retry   time.Duration
	logger  *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewFeedListener constructs the change feed worker.
func NewFeedListener(source repository.ChangeSource, applier ChangeApplier, retry time.Duration, logger *slog.Logger) *FeedListener {
	if retry <= 0 {
		retry = defaultRetryInterval
	}
	return &FeedListener{
		source:  source,
		applier: applier,
		retry:   retry,
		logger:  logger,
	}
}

// Start launches the subscription. It reports false when one is already running.
func (l *FeedListener) Start(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.logger.Warn("order feed already running")
		return false
	}

	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	l.wg.Add(1)
	go l.run(runCtx)
	return true
}

// Stop tears the subscription down and waits for it to finish.
func (l *FeedListener) Stop() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mu.Unlock()

	l.wg.Wait()
}

// Running reports whether a subscription is active.
func (l *FeedListener) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

func (l *FeedListener) run(ctx context.Context) {
	defer l.wg.Done()

	for {
		err := l.source.Listen(ctx, l.applier.ApplyChange)
		if ctx.Err() != nil {
			return
		}

		attrs := []any{slog.Duration("retry_in", l.retry)}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		l.logger.Error("order feed interrupted", attrs...)

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.retry):
		}
	}
}
