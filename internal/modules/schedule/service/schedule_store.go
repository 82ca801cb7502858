package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dayplanner/internal/modules/schedule/domain"
	scheduleout "dayplanner/internal/modules/schedule/port/out"
	"dayplanner/internal/platform/clock"
	apperrors "dayplanner/internal/platform/errors"
	"dayplanner/internal/platform/logfields"
)

// ScheduleStore owns the live Schedule for one session and decides when the persisted
// record is stale. Bubble Tea runs commands on their own goroutines, hence the mutex.
type ScheduleStore struct {
	clock  clock.Clock
	kv     scheduleout.KeyValueStore
	logger *slog.Logger

	mu      sync.Mutex
	current domain.Schedule
	loaded  bool
}

func NewScheduleStore(clock clock.Clock, kv scheduleout.KeyValueStore, logger *slog.Logger) *ScheduleStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleStore{clock: clock, kv: kv, logger: logger}
}

// Load reads the persisted schedule. Missing, malformed or previous-day records are
// replaced by a fresh schedule, persisted before it is returned.
func (s *ScheduleStore) Load(ctx context.Context) (domain.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return domain.Schedule{}, err
	}
	return s.current.Clone(), nil
}

// SetEntry stores text for key, or removes the entry when text is blank, then persists.
// The record is re-read first so entries saved by another process are kept, and a
// record from a previous day is reset before the write.
func (s *ScheduleStore) SetEntry(ctx context.Context, key, text string) (domain.Change, error) {
	hour, err := domain.ParseSlotKey(key)
	if err != nil {
		return domain.ChangeNone, fmt.Errorf("%w: %w", apperrors.ErrInvalidSlotKey, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return domain.ChangeNone, err
	}

	next := s.current.Clone()
	change := next.Set(key, text)
	if err := s.persistLocked(ctx, next); err != nil {
		return domain.ChangeNone, err
	}
	s.current = next
	s.logger.Debug("schedule entry saved", logfields.SlotKey(key), logfields.Hour(hour), slog.String("change", string(change)))
	return change, nil
}

// GetEntry looks key up in the live schedule without touching the backend.
func (s *ScheduleStore) GetEntry(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Get(key)
}

// Snapshot returns a copy of the live schedule as of the last load or write.
func (s *ScheduleStore) Snapshot() domain.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Reset discards today's entries.
func (s *ScheduleStore) Reset(ctx context.Context) (domain.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.resetLocked(ctx, s.clock.Now(), "requested"); err != nil {
		return domain.Schedule{}, err
	}
	return s.current.Clone(), nil
}

func (s *ScheduleStore) loadLocked(ctx context.Context) error {
	now := s.clock.Now()
	raw, ok, err := s.kv.Get(ctx, domain.StorageKey)
	if err != nil {
		return fmt.Errorf("%w: load schedule: %w", apperrors.ErrPersistence, err)
	}
	if !ok {
		return s.resetLocked(ctx, now, "missing")
	}
	sched, err := domain.DecodeRecord(raw)
	if err != nil {
		s.logger.Warn("discarding unreadable schedule", logfields.Error(err))
		return s.resetLocked(ctx, now, "malformed")
	}
	if sched.StaleAt(now) {
		return s.resetLocked(ctx, now, "stale")
	}
	s.current = sched
	s.loaded = true
	return nil
}

func (s *ScheduleStore) resetLocked(ctx context.Context, now time.Time, reason string) error {
	fresh := domain.NewSchedule(now)
	if err := s.persistLocked(ctx, fresh); err != nil {
		return err
	}
	s.current = fresh
	s.loaded = true
	s.logger.Info("schedule reset", logfields.Reason(reason), logfields.Day(now.Format(time.DateOnly)))
	return nil
}

func (s *ScheduleStore) persistLocked(ctx context.Context, sched domain.Schedule) error {
	raw, err := domain.EncodeRecord(sched)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, domain.StorageKey, raw); err != nil {
		return fmt.Errorf("%w: save schedule: %w", apperrors.ErrPersistence, err)
	}
	return nil
}
