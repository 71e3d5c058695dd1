package kvstore

import "sync"

// Store persists named JSON blobs wholesale. Load reports whether a blob
// exists under the name; Save replaces it entirely.
type Store interface {
	Load(name string) ([]byte, bool, error)
	Save(name string, data []byte) error
}

// Memory keeps blobs in process memory. Used in tests and as the degraded
// mode when durable storage is unavailable.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Load(name string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (m *Memory) Save(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[name] = stored
	return nil
}
