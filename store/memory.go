package store

import (
	"context"
	"strings"
	"sync"
)

type memBlob struct {
	contentType string
	body        []byte
}

// Memory is a process-local Store backed by a map. Thread-safe.
type Memory struct {
	mutex *sync.RWMutex
	db    map[string]memBlob
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{
		mutex: &sync.RWMutex{},
		db:    make(map[string]memBlob),
	}
}

func (m *Memory) Put(ctx context.Context, key, contentType string, body []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.db[key] = memBlob{contentType: contentType, body: body}
	return nil
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	blob, ok := m.db[key]
	if !ok {
		return nil, "", ErrNotFound
	}
	return blob.body, blob.contentType, nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.db, key)
	return nil
}

// Keys returns every stored key with the given prefix.
func (m *Memory) Keys(prefix string) []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	keys := make([]string, 0)
	for k := range m.db {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}
