package store

import (
	"strconv"
)

// MemoryStore keeps every value in memory. It is used directly in tests and
// embedded by the on-disk backends, which persist its pending changes on Flush.
type MemoryStore struct {
	values  map[string]string
	dirty   map[string]struct{}
	deleted map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return newMemoryStore(nil)
}

func newMemoryStore(initial map[string]string) *MemoryStore {
	if initial == nil {
		initial = make(map[string]string)
	}
	return &MemoryStore{
		values:  initial,
		dirty:   make(map[string]struct{}),
		deleted: make(map[string]struct{}),
	}
}

func (s *MemoryStore) GetInt(key string, def int) int {
	raw, ok := s.values[key]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func (s *MemoryStore) SetInt(key string, v int) {
	s.set(key, strconv.Itoa(v))
}

func (s *MemoryStore) GetFloat(key string, def float64) float64 {
	raw, ok := s.values[key]
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func (s *MemoryStore) SetFloat(key string, v float64) {
	s.set(key, strconv.FormatFloat(v, 'g', -1, 64))
}

func (s *MemoryStore) GetString(key string, def string) string {
	raw, ok := s.values[key]
	if !ok {
		return def
	}
	return raw
}

func (s *MemoryStore) SetString(key string, v string) {
	s.set(key, v)
}

func (s *MemoryStore) HasKey(key string) bool {
	_, ok := s.values[key]
	return ok
}

func (s *MemoryStore) DeleteKey(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	delete(s.dirty, key)
	s.deleted[key] = struct{}{}
}

// Flush only clears the pending-change bookkeeping; memory is already the
// final destination.
func (s *MemoryStore) Flush() error {
	s.markClean()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Keys returns every stored key in no particular order.
func (s *MemoryStore) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

func (s *MemoryStore) set(key, raw string) {
	s.values[key] = raw
	s.dirty[key] = struct{}{}
	delete(s.deleted, key)
}

func (s *MemoryStore) hasPending() bool {
	return len(s.dirty) > 0 || len(s.deleted) > 0
}

func (s *MemoryStore) markClean() {
	clear(s.dirty)
	clear(s.deleted)
}
