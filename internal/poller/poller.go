package poller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shortgen/internal/api"
	"shortgen/internal/logging"
	"shortgen/internal/workflow"
)

const (
	// DefaultInterval is the wait between successful polls.
	DefaultInterval = 3 * time.Second
	// DefaultErrorInterval is the longer wait after a failed poll so a
	// struggling backend is not hammered.
	DefaultErrorInterval = 5 * time.Second
)

// ErrTimedOut reports that MaxWait elapsed before the project reached a
// terminal status. The last observed snapshot accompanies the error.
var ErrTimedOut = errors.New("timed out waiting for project to finish")

// Fetch retrieves the current project snapshot.
type Fetch func(ctx context.Context) (*api.Project, error)

// Poller repeatedly fetches a project until its status is terminal.
// The zero value polls forever at the default cadence.
type Poller struct {
	// Interval is the wait after a successful poll. Defaults to
	// DefaultInterval when zero.
	Interval time.Duration
	// ErrorInterval is the wait after a failed poll. Defaults to
	// DefaultErrorInterval when zero.
	ErrorInterval time.Duration
	// MaxWait bounds the whole watch. Zero means no bound.
	MaxWait time.Duration
	// Variant selects the status vocabulary used for staleness checks.
	Variant workflow.Variant
	// OnUpdate, when set, receives every accepted snapshot including the
	// terminal one. It runs on the polling goroutine.
	OnUpdate func(*api.Project)
	// Logger defaults to a no-op logger.
	Logger *slog.Logger
}

// Watch polls until the project reaches a terminal status, the context is
// cancelled, or MaxWait elapses. It returns the last accepted snapshot in
// every outcome, so callers always know how far the project got.
//
// Snapshots whose status ranks below the highest rank already observed are
// treated as stale reads and skipped; the pipeline only moves forward.
func (p Poller) Watch(ctx context.Context, fetch Fetch) (*api.Project, error) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	errorInterval := p.ErrorInterval
	if errorInterval <= 0 {
		errorInterval = DefaultErrorInterval
	}
	logger := p.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	if p.MaxWait > 0 {
		var cancel context.CancelCauseFunc
		ctx, cancel = context.WithCancelCause(ctx)
		defer cancel(nil)
		timer := time.AfterFunc(p.MaxWait, func() { cancel(ErrTimedOut) })
		defer timer.Stop()
	}

	var (
		last     *api.Project
		bestRank = -1
	)

	for {
		snapshot, err := fetch(ctx)
		switch {
		case err != nil:
			if ctxErr := watchCause(ctx); ctxErr != nil {
				return last, ctxErr
			}
			logger.Warn("poll failed, will retry",
				logging.Error(err),
				logging.Duration("retry_in", errorInterval),
			)
			if err := p.wait(ctx, errorInterval); err != nil {
				return last, err
			}
			continue
		case snapshot == nil:
			return last, errors.New("backend returned no project")
		}

		status, known := workflow.ParseStatus(snapshot.Status)
		rank := workflow.Rank(p.Variant, status)
		if known && rank >= 0 && rank < bestRank {
			logger.Debug("skipping stale snapshot",
				logging.String("status", string(status)),
				logging.Int("rank", rank),
				logging.Int("best_rank", bestRank),
			)
		} else {
			if rank > bestRank {
				bestRank = rank
			}
			last = snapshot
			if p.OnUpdate != nil {
				p.OnUpdate(snapshot)
			}
			if known && workflow.IsTerminal(status) {
				return snapshot, nil
			}
		}

		if err := p.wait(ctx, interval); err != nil {
			return last, err
		}
	}
}

func (p Poller) wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return watchCause(ctx)
	case <-time.After(d):
		return nil
	}
}

// watchCause maps context termination to ErrTimedOut when the MaxWait timer
// fired, and to the plain context error otherwise. Returns nil if the context
// is still live.
func watchCause(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}
	if cause := context.Cause(ctx); errors.Is(cause, ErrTimedOut) {
		return ErrTimedOut
	}
	return ctx.Err()
}
