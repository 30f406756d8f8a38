package store

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const prefsItem = "prefs"

// GdataStore persists all keys as a single JSON object in the gdata item
// "prefs". gdata picks the platform location (user data dir on desktop,
// localStorage on wasm).
type GdataStore struct {
	*MemoryStore
	m *gdata.Manager
}

func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata %s: %w", appName, err)
	}

	values := make(map[string]string)
	data, err := m.LoadItem(prefsItem)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", prefsItem, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			// A corrupt prefs item starts over rather than blocking the game.
			log.Printf("[Store] Warning: Could not parse saved prefs, starting empty: %v", err)
			values = make(map[string]string)
		}
	}

	return &GdataStore{
		MemoryStore: newMemoryStore(values),
		m:           m,
	}, nil
}

func (s *GdataStore) Flush() error {
	if !s.hasPending() {
		return nil
	}
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := s.m.SaveItem(prefsItem, data); err != nil {
		return fmt.Errorf("save %s: %w", prefsItem, err)
	}
	s.markClean()
	return nil
}

func (s *GdataStore) Close() error {
	return s.Flush()
}
