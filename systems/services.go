package systems

import (
	"fmt"

	"github.com/automoto/deadknight/progress"
	"github.com/automoto/deadknight/store"
)

// LevelLoader switches the running scene. Both calls return an error instead
// of panicking when the level cannot be built.
type LevelLoader interface {
	LoadLevel(id string) error
	LoadLevelIndex(index int) error
}

// Services are the collaborators systems reach outside their world. A scene
// registers the methods below as its systems.
type Services struct {
	Progress *progress.Handle
	Loader   LevelLoader
	// Store receives fallback markers when Progress is not reachable yet.
	Store store.Store
	// OnDiagnostic receives problems systems recover from. May be nil.
	OnDiagnostic func(progress.Diagnostic)

	showDebug bool
}

func (s *Services) report(tag string, sev progress.Severity, op string, err error) {
	progress.Report(tag, s.OnDiagnostic, progress.Diagnostic{Severity: sev, Op: op, Err: err})
}

// LoadLevel loads the level at index by identifier, then by index, then
// falls back to the hub. Every failed attempt is reported.
func (s *Services) LoadLevel(levels progress.LevelTable, index int) error {
	if s.Loader == nil {
		err := fmt.Errorf("load level %d: no loader", index)
		s.report("Loader", progress.SeverityError, "LoadLevel", err)
		return err
	}

	id, ok := levels.ID(index)
	if ok {
		err := s.Loader.LoadLevel(id)
		if err == nil {
			return nil
		}
		s.report("Loader", progress.SeverityError, "LoadLevel", fmt.Errorf("load %q: %w", id, err))
	}

	err := s.Loader.LoadLevelIndex(index)
	if err == nil {
		return nil
	}
	s.report("Loader", progress.SeverityError, "LoadLevel", fmt.Errorf("load index %d: %w", index, err))

	hub := levels.Hub()
	if err = s.Loader.LoadLevel(hub); err != nil {
		err = fmt.Errorf("load hub %q: %w", hub, err)
		s.report("Loader", progress.SeverityFatal, "LoadLevel", err)
		return err
	}
	return nil
}
