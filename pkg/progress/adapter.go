package progress

import (
	"errors"

	"go.uber.org/zap"
)

// Adapter reads and writes the single progress record under a fixed key.
// It never hands a storage failure back to its caller: reads fall back to
// DefaultRecord and writes are best effort.
type Adapter struct {
	store  Store
	key    string
	logger *zap.Logger
}

// NewAdapter wraps store. A nil store means no durable storage is
// available; Load then always returns defaults and Save does nothing.
func NewAdapter(store Store, key string, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		store:  store,
		key:    key,
		logger: logger.Named("progress").With(zap.String("key", key)),
	}
}

// Available reports whether a durable store is attached.
func (a *Adapter) Available() bool {
	return a.store != nil
}

// Load returns the stored record, or DefaultRecord when it is absent,
// unreadable or malformed.
func (a *Adapter) Load() Record {
	if a.store == nil {
		a.logger.Debug("no storage available, using defaults")
		return DefaultRecord()
	}

	data, err := a.store.Get(a.key)
	if errors.Is(err, ErrNotFound) {
		return DefaultRecord()
	}
	if err != nil {
		a.logger.Warn("failed to read progress, using defaults", zap.Error(err))
		return DefaultRecord()
	}

	record, err := Decode(data)
	if err != nil {
		a.logger.Warn("stored progress is malformed, using defaults", zap.Error(err))
		return DefaultRecord()
	}
	return record
}

// Save writes the full record. Failures are logged and dropped.
func (a *Adapter) Save(r Record) {
	if a.store == nil {
		a.logger.Debug("no storage available, progress not saved")
		return
	}

	data, err := Encode(r)
	if err != nil {
		a.logger.Error("failed to encode progress", zap.Error(err))
		return
	}
	if err := a.store.Put(a.key, data); err != nil {
		a.logger.Error("failed to save progress", zap.Error(err))
		return
	}
	a.logger.Debug("progress saved",
		zap.Bool("onboardingComplete", r.OnboardingComplete),
		zap.Int("checked", r.Checklist.Completed()),
		zap.Bool("day1Complete", r.Day1Complete))
}

// Reset removes the stored record so the next Load returns defaults.
// Unlike Save it reports failure, since it is only driven from the CLI.
func (a *Adapter) Reset() error {
	if a.store == nil {
		return ErrUnavailable
	}
	return a.store.Delete(a.key)
}
