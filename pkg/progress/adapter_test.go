package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testKey = "shipfive-state"

func observedAdapter(store Store) (*Adapter, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewAdapter(store, testKey, zap.New(core)), logs
}

// storesUnderTest returns a fresh instance of every backend.
func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	cfg := DefaultBadgerConfig()
	cfg.InMemory = true
	cfg.SyncWrites = false
	badgerStore, err := OpenBadgerStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { badgerStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
		"badger": badgerStore,
	}
}

func TestAdapterRoundTrip(t *testing.T) {
	records := []Record{
		DefaultRecord(),
		{OnboardingComplete: true},
		{OnboardingComplete: true, Checklist: Checklist{Category: true, Typography: true}},
		{OnboardingComplete: true, Checklist: All(), Day1Complete: true},
	}

	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			adapter := NewAdapter(store, testKey, nil)
			for _, r := range records {
				adapter.Save(r)
				assert.Equal(t, r, adapter.Load())
			}
		})
	}
}

func TestAdapterLoadAbsentReturnsDefaults(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			adapter, logs := observedAdapter(store)
			assert.Equal(t, DefaultRecord(), adapter.Load())
			assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
		})
	}
}

func TestAdapterLoadCorruptReturnsDefaults(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(testKey, []byte(`{"onboardingComplete": tru`)))

			adapter, logs := observedAdapter(store)
			assert.Equal(t, DefaultRecord(), adapter.Load())
			assert.Equal(t, 1, logs.FilterMessage("stored progress is malformed, using defaults").Len())
		})
	}
}

func TestAdapterLoadReadFailureReturnsDefaults(t *testing.T) {
	store := NewMemoryStore()
	adapter, logs := observedAdapter(store)
	adapter.Save(Record{OnboardingComplete: true})

	store.FailReads(errors.New("disk on fire"))

	assert.Equal(t, DefaultRecord(), adapter.Load())
	assert.Equal(t, 1, logs.FilterMessage("failed to read progress, using defaults").Len())
}

func TestAdapterSaveFailureIsSwallowed(t *testing.T) {
	store := NewMemoryStore()
	adapter, logs := observedAdapter(store)
	adapter.Save(Record{OnboardingComplete: true})

	store.FailWrites(errors.New("quota exceeded"))
	adapter.Save(Record{OnboardingComplete: true, Day1Complete: true, Checklist: All()})

	assert.Equal(t, 1, logs.FilterMessage("failed to save progress").Len())

	store.FailWrites(nil)
	assert.Equal(t, Record{OnboardingComplete: true}, adapter.Load())
}

func TestAdapterWithoutStore(t *testing.T) {
	adapter, _ := observedAdapter(nil)

	assert.False(t, adapter.Available())
	adapter.Save(Record{OnboardingComplete: true})
	assert.Equal(t, DefaultRecord(), adapter.Load())
	assert.ErrorIs(t, adapter.Reset(), ErrUnavailable)
}

func TestAdapterReset(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			adapter := NewAdapter(store, testKey, nil)
			adapter.Save(Record{OnboardingComplete: true, Checklist: All(), Day1Complete: true})

			require.NoError(t, adapter.Reset())
			assert.Equal(t, DefaultRecord(), adapter.Load())

			_, err := store.Get(testKey)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}
