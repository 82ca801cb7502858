package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dayplanner/internal/platform/config"
	apperrors "dayplanner/internal/platform/errors"
	"dayplanner/internal/platform/logging"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestNewWiresEveryBackend(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 10, 17, 10, 30, 0, 0, time.Local)

	for _, backend := range []string{config.BackendFile, config.BackendSQLite, config.BackendMemory} {
		backend := backend
		t.Run(backend, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.Load(t.TempDir(), config.Overrides{Backend: backend})
			require.NoError(t, err)

			app, err := NewWithClock(cfg, logging.Discard(), fixedClock{now: now})
			require.NoError(t, err)
			t.Cleanup(func() { _ = app.Close() })

			ctx := context.Background()
			_, err = app.ScheduleCLI.SaveHour(ctx, 10, "deep work")
			require.NoError(t, err)
			board, err := app.ScheduleCLI.Board(ctx)
			require.NoError(t, err)
			require.Len(t, board.Slots, 9)
			require.Equal(t, "present", board.Slots[1].Phase)
			require.Equal(t, "deep work", board.Slots[1].Text)
		})
	}
}

func TestFileBackendChangesSignalExternalWrites(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load(t.TempDir(), config.Overrides{})
	require.NoError(t, err)
	app, err := NewWithClock(cfg, logging.Discard(), fixedClock{now: time.Now()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes, err := app.Changes(ctx)
	require.NoError(t, err)
	require.NotNil(t, changes)

	require.NoError(t, os.WriteFile(filepath.Join(cfg.KVDir, "schedule.json"), []byte("{}"), 0o644))
	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestMemoryBackendHasNoWatcher(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load(t.TempDir(), config.Overrides{Backend: config.BackendMemory})
	require.NoError(t, err)
	app, err := New(cfg, logging.Discard())
	require.NoError(t, err)
	changes, err := app.Changes(context.Background())
	require.NoError(t, err)
	require.Nil(t, changes)
}

func TestNewRejectsInvalidWindow(t *testing.T) {
	t.Parallel()
	for _, hours := range [][2]int{{18, 9}, {-1, 5}, {9, 24}} {
		cfg, err := config.Load(t.TempDir(), config.Overrides{
			Backend:   config.BackendMemory,
			StartHour: &hours[0],
			EndHour:   &hours[1],
		})
		require.NoError(t, err)
		_, err = New(cfg, logging.Discard())
		require.ErrorIs(t, err, apperrors.ErrInvalidWindow, hours)
	}
}
