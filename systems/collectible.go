package systems

import (
	"log"

	"github.com/automoto/deadknight/components"
	"github.com/automoto/deadknight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollectibles credits coins and chests the player touches. Pickups
// wait in place while progress is not reachable.
func (s *Services) UpdateCollectibles(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	m, ok := s.Progress.Get()
	if !ok {
		return
	}

	var picked []*donburi.Entry
	for _, entry := range touchedEntries(playerEntry, tags.ResolvCollectible) {
		pickup := components.Collectible.Get(entry)
		if pickup.Collected {
			continue
		}
		pickup.Collected = true

		var err error
		if pickup.Kind == components.Chest {
			err = m.CollectChest(pickup.Level)
		} else {
			err = m.CollectCoin(pickup.Level)
		}
		if err != nil {
			log.Printf("[Collectible] %s on level %d not counted: %v", pickup.Kind, pickup.Level, err)
		}
		picked = append(picked, entry)
		ObjectivesChangedEvent.Publish(ecs.World, ObjectivesChanged{Level: pickup.Level})
	}

	for _, entry := range picked {
		removeEntity(ecs.World, entry)
	}
}
