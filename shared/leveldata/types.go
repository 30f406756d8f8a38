// Package leveldata parses TMX level maps into plain data. It has no
// dependencies on ebitengine, donburi or resolv.
package leveldata

// Rect is an axis-aligned area in map pixels.
type Rect struct {
	X, Y, W, H float64
}

// BossSpawn places a boss. Type is the boss name as written in the map.
type BossSpawn struct {
	Rect
	Type   string
	Health int // 0 means the configured default
}

// Map holds everything the game builds from one TMX file.
type Map struct {
	Width, Height int // pixels
	Solids        []Rect
	SpawnX        float64
	SpawnY        float64
	HasSpawn      bool
	Goals         []Rect
	Coins         []Rect // zero size for point objects
	Chests        []Rect
	Bosses        []BossSpawn
}
