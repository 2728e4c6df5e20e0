package progress

import (
	"errors"
	"fmt"
	"sync"

	"shipfive/pkg/config"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned by Store.Get when the key holds no value.
	ErrNotFound = errors.New("key not found")

	// ErrUnavailable is returned when no durable store can be reached.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is a durable local key-value store.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// OpenStore opens the backend named by one of the config.Backend* values,
// rooted at dir.
func OpenStore(backend, dir string, logger *zap.Logger) (Store, error) {
	switch backend {
	case config.BackendFile:
		return NewFileStore(dir)
	case config.BackendBadger:
		cfg := DefaultBadgerConfig()
		cfg.Path = badgerPath(dir)
		cfg.Logger = logger
		return OpenBadgerStore(cfg)
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// MemoryStore keeps values in a map. Reads and writes can be made to fail
// to exercise fallback paths.
type MemoryStore struct {
	mu         sync.Mutex
	data       map[string][]byte
	failReads  error
	failWrites error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

// FailReads makes subsequent Get calls return err. Pass nil to clear.
func (m *MemoryStore) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failReads = err
}

// FailWrites makes subsequent Put and Delete calls return err. Pass nil to clear.
func (m *MemoryStore) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = err
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReads != nil {
		return nil, m.failReads
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites != nil {
		return m.failWrites
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites != nil {
		return m.failWrites
	}
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
