// Package snapshot persists shell layouts in the background.
package snapshot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

const defaultInterval = 2 * time.Second

// Service handles debounced layout snapshots. Callers capture the layout on
// the UI goroutine and hand it over with Schedule; only the latest capture
// is written once changes settle.
type Service struct {
	snapshotUC *usecase.SnapshotLayoutUseCase
	name       string

	// saveMu serializes writes so Stop waits for an in-flight background save.
	saveMu sync.Mutex

	mu       sync.Mutex
	interval time.Duration
	disabled bool
	timer    *time.Timer
	pending  *entity.LayoutData
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewService creates a snapshot service saving under name.
func NewService(snapshotUC *usecase.SnapshotLayoutUseCase, name string, intervalMs int) *Service {
	interval := time.Duration(intervalMs) * time.Millisecond
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		snapshotUC: snapshotUC,
		name:       name,
		interval:   interval,
	}
}

// Start enables background saves.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().
		Dur("interval", s.interval).
		Str("layout", s.name).
		Msg("layout snapshot service started")
}

// Stop stops background saves and writes any pending layout. A background
// save still running is cancelled and waited for, so its layout is flushed
// with ctx instead.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// SetInterval changes the debounce delay for later Schedule calls. A
// non-positive interval disables autosave: Schedule is ignored and the
// running timer is stopped. A layout already pending is still written by
// Stop or SaveNow.
func (s *Service) SetInterval(intervalMs int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disabled = intervalMs <= 0
	if s.disabled {
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		return
	}
	s.interval = time.Duration(intervalMs) * time.Millisecond
}

// Interval returns the debounce delay, or 0 when autosave is disabled.
func (s *Service) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disabled {
		return 0
	}
	return s.interval
}

// Schedule records data as the latest layout and restarts the debounce timer.
func (s *Service) Schedule(data *entity.LayoutData) {
	if data == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disabled {
		return
	}

	s.pending = data

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}
		if err := s.savePending(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.FromContext(ctx).Error().Err(err).Str("layout", s.name).Msg("failed to save layout snapshot")
		}
	})
}

// Pending reports whether a scheduled layout has not been written yet.
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// SaveNow writes the pending layout immediately.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.savePending(ctx)
}

func (s *Service) savePending(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	data := s.pending
	s.pending = nil
	s.mu.Unlock()

	if data == nil {
		return nil
	}

	err := s.snapshotUC.Execute(ctx, usecase.SnapshotLayoutInput{Name: s.name, Data: data})
	if err != nil {
		// Keep the failed capture unless a newer one arrived meanwhile.
		s.mu.Lock()
		if s.pending == nil {
			s.pending = data
		}
		s.mu.Unlock()
	}
	return err
}
