package prefs

import "sync"

// MemoryStore keeps settings in process memory only.
type MemoryStore struct {
	mu       sync.Mutex
	settings Settings
	writes   int
}

// NewMemoryStore returns a store seeded with s.
func NewMemoryStore(s Settings) *MemoryStore {
	return &MemoryStore{settings: s}
}

func (m *MemoryStore) Bool(key Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings.Bool(key)
}

func (m *MemoryStore) SetBool(key Key, v bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.settings.setBool(key, v); err != nil {
		return err
	}
	m.writes++
	return nil
}

func (m *MemoryStore) Position() Position {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings.Position
}

func (m *MemoryStore) SetPosition(p Position) error {
	if _, err := p.MarshalYAML(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.Position = p
	m.writes++
	return nil
}

func (m *MemoryStore) Settings() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// Writes reports how many successful writes the store has seen.
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
