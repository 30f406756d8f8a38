package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/automoto/deadknight/progress"
	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var levelsYAML []byte

// LevelConfig is one row of the level table. Row 0 is the hub.
type LevelConfig struct {
	ID             string   `yaml:"id"`
	Map            string   `yaml:"map"` // TMX path inside the level filesystem
	RequiredCoins  int      `yaml:"requiredCoins"`
	RequiredChests int      `yaml:"requiredChests"`
	Bosses         []string `yaml:"bosses"`
}

type levelFile struct {
	Levels []LevelConfig `yaml:"levels"`
}

// Levels is the active level table.
var Levels []LevelConfig

// ParseLevels decodes a level table document.
func ParseLevels(data []byte) ([]LevelConfig, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse levels: %w", err)
	}
	if len(f.Levels) < 2 {
		return nil, errors.New("parse levels: need a hub and at least one level")
	}
	for i, l := range f.Levels {
		if l.ID == "" || l.Map == "" {
			return nil, fmt.Errorf("parse levels: entry %d needs id and map", i)
		}
		if l.RequiredCoins < 0 || l.RequiredChests < 0 {
			return nil, fmt.Errorf("parse levels: entry %d (%s) has a negative requirement", i, l.ID)
		}
	}
	return f.Levels, nil
}

// BuildLevelTable converts level rows into the table the progress manager
// evaluates objectives against.
func BuildLevelTable(rows []LevelConfig) (progress.LevelTable, error) {
	levels := make([]progress.Level, 0, len(rows))
	for _, row := range rows {
		l := progress.Level{
			ID:             row.ID,
			RequiredCoins:  row.RequiredCoins,
			RequiredChests: row.RequiredChests,
		}
		for _, name := range row.Bosses {
			b, err := progress.ParseBossType(name)
			if err != nil {
				return progress.LevelTable{}, fmt.Errorf("level %s: %w", row.ID, err)
			}
			l.Requires[b] = true
		}
		levels = append(levels, l)
	}
	return progress.NewLevelTable(levels)
}

func loadLevels() {
	levels, err := ParseLevels(levelsYAML)
	if err != nil {
		panic("embedded levels.yaml: " + err.Error())
	}
	Levels = levels

	if Debug.LevelsFile == "" {
		return
	}
	data, err := os.ReadFile(Debug.LevelsFile)
	if err != nil {
		log.Printf("Warning: Could not read %s, using built-in levels: %v", Debug.LevelsFile, err)
		return
	}
	override, err := ParseLevels(data)
	if err != nil {
		log.Printf("Warning: Could not use %s, using built-in levels: %v", Debug.LevelsFile, err)
		return
	}
	Levels = override
}
