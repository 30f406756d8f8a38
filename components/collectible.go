package components

import "github.com/yohamta/donburi"

type CollectibleKind int

const (
	Coin CollectibleKind = iota
	Chest
)

func (k CollectibleKind) String() string {
	if k == Chest {
		return "Chest"
	}
	return "Coin"
}

type CollectibleData struct {
	Kind      CollectibleKind
	Level     int
	Collected bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()
