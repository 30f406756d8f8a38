package config

import (
	"log"

	"github.com/caarlos0/env/v11"
)

// DebugConfig contains debug/testing switches, read from the environment
type DebugConfig struct {
	ForceResetOnStart bool   `env:"DK_FORCE_RESET"`       // Discard saved progress on launch
	UnlockAllLevels   bool   `env:"DK_UNLOCK_ALL"`        // Open every level on launch
	SkipRequirements  bool   `env:"DK_SKIP_REQUIREMENTS"` // Gates let the player through unconditionally
	AutoSyncLevel     bool   `env:"DK_AUTO_SYNC" envDefault:"true"`
	DrawColliders     bool   `env:"DK_DRAW_COLLIDERS"`
	StartLevel        string `env:"DK_START_LEVEL"`  // Level id to boot into instead of the saved one
	LevelsFile        string `env:"DK_LEVELS_FILE"` // YAML file replacing the embedded level table
}

// StorageConfig selects where progress is saved
type StorageConfig struct {
	Backend          string `env:"DK_STORE" envDefault:"gdata"`
	AppName          string `env:"DK_APP_NAME" envDefault:"deadknight"`
	Path             string `env:"DK_STORE_PATH"`
	MirrorLegacyKeys bool   `env:"DK_MIRROR_LEGACY_KEYS" envDefault:"true"`
}

var Debug DebugConfig
var Storage StorageConfig

// LoadEnv re-reads Debug and Storage from the environment.
func LoadEnv() error {
	var d DebugConfig
	if err := env.Parse(&d); err != nil {
		return err
	}
	var s StorageConfig
	if err := env.Parse(&s); err != nil {
		return err
	}
	Debug = d
	Storage = s
	return nil
}

func loadEnv() {
	if err := LoadEnv(); err != nil {
		log.Printf("Warning: Could not parse environment config: %v", err)
		Debug = DebugConfig{AutoSyncLevel: true}
		Storage = StorageConfig{Backend: "gdata", AppName: "deadknight", MirrorLegacyKeys: true}
	}
}
