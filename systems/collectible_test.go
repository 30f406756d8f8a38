package systems

import (
	"testing"

	"github.com/automoto/deadknight/components"
	"github.com/automoto/deadknight/systems/factory"
	"github.com/yohamta/donburi"
)

func TestCollectiblesCredited(t *testing.T) {
	f := newFixture(t)
	m := f.withManager(t)
	changed := 0
	ObjectivesChangedEvent.Subscribe(f.ecs.World, func(donburi.World, ObjectivesChanged) { changed++ })

	factory.CreatePlayer(f.ecs, 100, 100)
	coin := factory.CreateCollectible(f.ecs, components.Coin, 1, 108, 116, 0, 0)
	chest := factory.CreateCollectible(f.ecs, components.Chest, 1, 104, 104, 16, 12)
	far := factory.CreateCollectible(f.ecs, components.Coin, 1, 400, 100, 0, 0)

	f.svc.UpdateCollectibles(f.ecs)
	f.svc.UpdateCollectibles(f.ecs)
	ProcessEvents(f.ecs)

	s := m.State().Levels[1]
	if s.CollectedCoins != 1 || s.CollectedChests != 1 {
		t.Errorf("collected %d coins %d chests, want 1/1", s.CollectedCoins, s.CollectedChests)
	}
	if coin.Valid() || chest.Valid() {
		t.Error("collected pickups should be removed")
	}
	if !far.Valid() {
		t.Error("pickup out of reach was removed")
	}
	if changed != 2 {
		t.Errorf("ObjectivesChanged published %d times, want 2", changed)
	}
}

func TestCollectiblesWaitForProgress(t *testing.T) {
	f := newFixture(t)
	factory.CreatePlayer(f.ecs, 100, 100)
	coin := factory.CreateCollectible(f.ecs, components.Coin, 1, 108, 116, 0, 0)

	f.svc.UpdateCollectibles(f.ecs)
	if !coin.Valid() || components.Collectible.Get(coin).Collected {
		t.Fatal("coin taken with no progress manager")
	}

	m := f.withManager(t)
	f.svc.UpdateCollectibles(f.ecs)
	if got := m.State().Levels[1].CollectedCoins; got != 1 {
		t.Errorf("CollectedCoins = %d, want 1", got)
	}
}

func TestCollectiblesOverflowKept(t *testing.T) {
	f := newFixture(t)
	m := f.withManager(t)
	collect(t, m, 1, 30, 0)
	factory.CreatePlayer(f.ecs, 100, 100)
	factory.CreateCollectible(f.ecs, components.Coin, 1, 108, 116, 0, 0)

	f.svc.UpdateCollectibles(f.ecs)

	if got := m.State().Levels[1].CollectedCoins; got != 31 {
		t.Errorf("CollectedCoins = %d, want 31", got)
	}
}
