// storage/memory.go
package storage

// MemStore is the in-memory Store fallback, used when no writable data
// directory is available and throughout the tests.
type MemStore struct {
	values map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: map[string][]byte{}}
}

func (m *MemStore) Save(key string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	m.values[key] = buf
	return nil
}

func (m *MemStore) Load(key string) ([]byte, error) {
	data, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

func (m *MemStore) Clear(key string) error {
	delete(m.values, key)
	return nil
}
