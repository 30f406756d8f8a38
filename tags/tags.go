package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Wall        = donburi.NewTag().SetName("Wall")
	Gate        = donburi.NewTag().SetName("Gate")
	Boss        = donburi.NewTag().SetName("Boss")
	Collectible = donburi.NewTag().SetName("Collectible")
)

// Resolv tags for physics collision
const (
	ResolvSolid       = "solid"
	ResolvPlayer      = "Player"
	ResolvGate        = "gate"
	ResolvBoss        = "Boss"
	ResolvCollectible = "collectible"
)
