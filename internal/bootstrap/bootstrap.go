package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	scheduleinadapter "dayplanner/internal/modules/schedule/adapter/in"
	scheduleoutadapter "dayplanner/internal/modules/schedule/adapter/out"
	"dayplanner/internal/modules/schedule/domain"
	scheduleout "dayplanner/internal/modules/schedule/port/out"
	scheduleservice "dayplanner/internal/modules/schedule/service"
	scheduleusecase "dayplanner/internal/modules/schedule/usecase"
	"dayplanner/internal/platform/clock"
	"dayplanner/internal/platform/config"
	"dayplanner/internal/platform/logfields"
	uiapp "dayplanner/internal/ui/app"
)

const watchDebounce = 150 * time.Millisecond

type App struct {
	ScheduleCLI scheduleinadapter.CLIHandler

	watcher *scheduleoutadapter.FileWatcher
	closers []io.Closer
	logger  *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	return NewWithClock(cfg, logger, clock.SystemClock{})
}

// NewWithClock wires the application against clk; tests pin the day with it.
func NewWithClock(cfg config.Config, logger *slog.Logger, clk clock.Clock) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	window, err := domain.NewWindow(cfg.StartHour, cfg.EndHour)
	if err != nil {
		return nil, err
	}

	app := &App{logger: logger}
	var kv scheduleout.KeyValueStore
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := scheduleoutadapter.NewSQLiteKeyValueStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("new sqlite store: %w", err)
		}
		app.closers = append(app.closers, store)
		kv = store
	case config.BackendMemory:
		kv = scheduleoutadapter.NewMemoryKeyValueStore()
	default:
		kv = scheduleoutadapter.NewFileKeyValueStore(cfg.KVDir)
		app.watcher = scheduleoutadapter.NewFileWatcher(cfg.KVDir, domain.StorageKey, watchDebounce, logger)
	}
	logger.Debug("schedule backend ready", logfields.Backend(cfg.Backend))

	store := scheduleservice.NewScheduleStore(clk, kv, logger)
	app.ScheduleCLI = scheduleinadapter.NewCLIHandler(scheduleusecase.NewInteractor(store, clk, window))
	return app, nil
}

// Close releases backend handles.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// Changes starts the backend watcher. Backends without one return a nil channel.
func (a *App) Changes(ctx context.Context) (<-chan struct{}, error) {
	if a.watcher == nil {
		return nil, nil
	}
	return a.watcher.Watch(ctx)
}

func RunTUI(ctx context.Context, app *App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes, err := app.Changes(ctx)
	if err != nil {
		// The planner still works without live refresh.
		app.logger.Warn("file watcher unavailable", logfields.Error(err))
		changes = nil
	}
	model := uiapp.NewModel(app.ScheduleCLI, changes)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}
