// Package store provides the durable scalar key-value storage that progress
// is persisted to. Values written through a Store are visible to reads right
// away and become durable once Flush returns.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store is a string-keyed store of scalar values.
// Reads of a missing key, or of a value that does not parse as the requested
// type, return the supplied default.
type Store interface {
	GetInt(key string, def int) int
	SetInt(key string, v int)
	GetFloat(key string, def float64) float64
	SetFloat(key string, v float64)
	GetString(key string, def string) string
	SetString(key string, v string)
	HasKey(key string) bool
	DeleteKey(key string)
	Flush() error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendGdata  = "gdata"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var ErrUnknownBackend = errors.New("unknown store backend")

// Config selects and locates a backend.
type Config struct {
	Backend string
	AppName string
	// Path is the database file for the sqlite backend. Empty means
	// <user config dir>/<AppName>/progress.db.
	Path string
}

// Open returns the backend named by cfg.Backend.
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendGdata, "":
		return OpenGdata(cfg.AppName)
	case BackendSQLite:
		path := cfg.Path
		if path == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return nil, fmt.Errorf("resolve config dir: %w", err)
			}
			path = filepath.Join(dir, cfg.AppName, "progress.db")
		}
		return OpenSQLite(context.Background(), path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
