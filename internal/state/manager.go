package state

import (
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"luxestore-be/internal/kvstore"
	"luxestore-be/internal/logger"
)

// Session bundles the two stores one identity owns. They persist under
// separate blob names, mirroring the two storage keys of the original
// storefront.
type Session struct {
	Store      *Store
	Comparison *Comparison
}

// Manager hands out one Session per identity (user id or device id) and
// keeps the handle for the life of the process, so concurrent requests for
// the same owner share one synchronized store. Blobs for different owners
// live in separate directories under root; with an empty root everything
// stays in memory.
//
// Known limitation: two processes pointed at the same root race wholesale
// blob writes for the same owner; last writer wins.
type Manager struct {
	mu       sync.Mutex
	root     string
	sessions map[string]*Session
}

func NewManager(root string) *Manager {
	return &Manager{
		root:     root,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Session(owner string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[owner]; ok {
		return sess
	}

	kv := m.adapterFor(owner)
	sess := &Session{
		Store:      NewStore(kv),
		Comparison: NewComparison(kv),
	}
	m.sessions[owner] = sess
	return sess
}

// adapterFor degrades to in-memory when durable storage cannot be set up.
func (m *Manager) adapterFor(owner string) kvstore.Store {
	if m.root == "" {
		return kvstore.NewMemory()
	}

	kv, err := kvstore.NewFileStore(filepath.Join(m.root, safeOwner(owner)))
	if err != nil {
		logger.L().Warn("state storage unavailable, falling back to memory",
			zap.String("owner", owner), zap.Error(err))
		return kvstore.NewMemory()
	}
	return kv
}

func safeOwner(owner string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, owner)
	if cleaned == "" {
		return "anonymous"
	}
	return cleaned
}
