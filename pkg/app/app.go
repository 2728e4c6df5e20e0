// Package app wires storage, the progress adapter and the state machine
// together for the shipfive commands.
package app

import (
	"shipfive/pkg/config"
	"shipfive/pkg/progress"
	"shipfive/pkg/wizard"

	"go.uber.org/zap"
)

// Options selects where progress is stored.
type Options struct {
	Backend  string
	StateDir string
	StateKey string
	Logger   *zap.Logger
}

// App bundles the long-lived pieces of one process.
type App struct {
	Adapter *progress.Adapter
	Machine *wizard.Machine

	store  progress.Store
	logger *zap.Logger
}

// Open builds an App. If the store cannot be opened the app still works,
// it just does not remember anything.
func Open(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.StateKey == "" {
		opts.StateKey = config.DefaultStateKey
	}

	store, err := progress.OpenStore(opts.Backend, opts.StateDir, logger)
	if err != nil {
		logger.Warn("storage unavailable, progress will not be remembered",
			zap.String("backend", opts.Backend),
			zap.String("dir", opts.StateDir),
			zap.Error(err))
		store = nil
	}

	adapter := progress.NewAdapter(store, opts.StateKey, logger)
	machine := wizard.NewMachine(adapter, logger)
	machine.OnChange = func(s wizard.Snapshot) {
		logger.Info("state changed",
			zap.Stringer("screen", s.Screen),
			zap.Bool("modalOpen", s.ModalOpen),
			zap.Int("checked", s.Record.Checklist.Completed()),
			zap.Bool("day1Complete", s.Record.Day1Complete))
	}

	return &App{
		Adapter: adapter,
		Machine: machine,
		store:   store,
		logger:  logger,
	}
}

// StorageAvailable reports whether progress is being persisted.
func (a *App) StorageAvailable() bool {
	return a.store != nil
}

// Close releases the store.
func (a *App) Close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", zap.Error(err))
	}
}
