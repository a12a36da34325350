package storage

import (
	"context"
	"lavender/shared/constant"
	"slices"
	"sync"
)

// Memory keeps the document in process. Tests use it in place of a real backend.
type Memory struct {
	mu     sync.RWMutex
	data   []byte
	exists bool
	writes int

	// FailWrites makes every Write return this error when set.
	FailWrites error
}

// NewMemory returns a memory storage. A nil initial document reads as ErrNotExist.
func NewMemory(initial []byte) *Memory {
	return &Memory{
		data:   slices.Clone(initial),
		exists: initial != nil,
	}
}

func (m *Memory) Name() string {
	return constant.StoreBackendMemory
}

func (m *Memory) Read(_ context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.exists {
		return nil, ErrNotExist
	}

	return slices.Clone(m.data), nil
}

func (m *Memory) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}

	m.data = slices.Clone(data)
	m.exists = true
	m.writes++

	return nil
}

// Writes reports how many successful writes happened.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.writes
}

// Bytes returns the stored document.
func (m *Memory) Bytes() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.data)
}
