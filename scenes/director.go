package scenes

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/progress"
	"github.com/automoto/deadknight/shared/leveldata"
	"github.com/automoto/deadknight/systems"
)

var ErrUnknownLevel = errors.New("unknown level")

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Director builds level scenes from the level table and swaps them in. It is
// the systems.LevelLoader every scene's gate uses.
type Director struct {
	sceneChanger SceneChanger
	rows         []cfg.LevelConfig
	levels       progress.LevelTable
	fsys         fs.FS
	services     *systems.Services
	current      *LevelScene
}

// NewDirector wires itself in as svc's loader.
func NewDirector(sc SceneChanger, rows []cfg.LevelConfig, fsys fs.FS, svc *systems.Services) (*Director, error) {
	levels, err := cfg.BuildLevelTable(rows)
	if err != nil {
		return nil, err
	}
	d := &Director{
		sceneChanger: sc,
		rows:         rows,
		levels:       levels,
		fsys:         fsys,
		services:     svc,
	}
	svc.Loader = d
	return d, nil
}

func (d *Director) Levels() progress.LevelTable {
	return d.levels
}

// Current returns the scene loaded last, or nil.
func (d *Director) Current() *LevelScene {
	return d.current
}

// LoadLevel loads the level whose identifier matches id, ignoring case.
func (d *Director) LoadLevel(id string) error {
	for i, row := range d.rows {
		if strings.EqualFold(row.ID, strings.TrimSpace(id)) {
			return d.LoadLevelIndex(i)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownLevel, id)
}

func (d *Director) LoadLevelIndex(index int) error {
	if index < 0 || index >= len(d.rows) {
		return fmt.Errorf("%w: index %d", ErrUnknownLevel, index)
	}
	row := d.rows[index]

	levelMap, err := leveldata.Load(d.fsys, row.Map)
	if err != nil {
		return fmt.Errorf("load level %s: %w", row.ID, err)
	}

	if d.current != nil {
		d.current.Teardown()
	}
	d.current = newLevelScene(d, index, row.ID, levelMap)
	d.sceneChanger.ChangeScene(d.current)
	log.Printf("[Director] Loaded %s", row.ID)

	if m, ok := d.services.Progress.Get(); ok {
		m.OnLevelBecameActive(row.ID)
		if index == 0 && m.IsGameCompleted() {
			log.Printf("[Director] All levels completed")
		}
	}
	return nil
}

// LoadStart loads the debug start level if one is configured, otherwise the
// saved current level, falling back toward the hub.
func (d *Director) LoadStart() error {
	index := 0
	if m, ok := d.services.Progress.Get(); ok {
		index = m.CurrentLevel()
	}
	if id := cfg.Debug.StartLevel; id != "" {
		if i, ok := d.levels.IndexOf(id); ok {
			index = i
		} else {
			log.Printf("[Director] Unknown start level %q, ignoring", id)
		}
	}
	return d.services.LoadLevel(d.levels, index)
}

// RestartGame wipes progress and starts over at the first level.
func (d *Director) RestartGame() error {
	m, ok := d.services.Progress.Get()
	if !ok {
		return errors.New("restart game: progress not available")
	}
	if err := m.ResetAll(); err != nil {
		return fmt.Errorf("restart game: %w", err)
	}
	m.SuppressAutoSync()
	_ = m.SetCurrentLevel(1)
	return d.services.LoadLevel(d.levels, 1)
}
