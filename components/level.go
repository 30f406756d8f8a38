package components

import "github.com/yohamta/donburi"

// LevelData describes the loaded level. Index is its position in the level
// table; 0 is the hub.
type LevelData struct {
	Index  int
	ID     string
	Width  int
	Height int
}

var Level = donburi.NewComponentType[LevelData]()
