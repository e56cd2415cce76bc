package storage

import (
	"context"
	"sync"
)

// MemoryBackend is an in-process Backend. FailPut and FailGet inject errors.
type MemoryBackend struct {
	mu      sync.Mutex
	data    map[string][]byte
	FailPut error
	FailGet error
	Puts    int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet != nil {
		return nil, m.FailGet
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryBackend) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPut != nil {
		return m.FailPut
	}
	m.data[key] = append([]byte(nil), data...)
	m.Puts++
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// SetFailPut changes the injected Put error under the lock.
func (m *MemoryBackend) SetFailPut(err error) {
	m.mu.Lock()
	m.FailPut = err
	m.mu.Unlock()
}

// Has reports whether key holds a value.
func (m *MemoryBackend) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

// Raw returns the stored bytes without copying guards; tests only.
func (m *MemoryBackend) Raw(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

// SetRaw stores bytes directly, bypassing FailPut.
func (m *MemoryBackend) SetRaw(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
}
