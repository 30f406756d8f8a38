package systems

import (
	"log"
	"strings"

	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/progress"
	"github.com/automoto/deadknight/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGates runs the exit gate state machine. A gate reacts when the player
// starts touching it, not while the player keeps standing in it.
func (s *Services) UpdateGates(ecs *ecs.ECS) {
	playerEntry, hasPlayer := tags.Player.First(ecs.World)

	touching := map[donburi.Entity]bool{}
	if hasPlayer {
		for _, entry := range touchedEntries(playerEntry, tags.ResolvGate) {
			touching[entry.Entity()] = true
		}
	}

	var transitions []*donburi.Entry
	components.Gate.Each(ecs.World, func(entry *donburi.Entry) {
		gate := components.Gate.Get(entry)
		updateGateFlash(gate)

		contact := touching[entry.Entity()]
		entered := contact && !gate.Contact
		gate.Contact = contact

		switch gate.State {
		case components.GateIdle:
			if entered {
				s.onGateContact(ecs, entry, playerEntry)
			}
		case components.GateEvaluating:
			if s.gateCancelled(gate) {
				log.Printf("[Gate] Progress was reset, dropping pending transition")
				resetGate(gate)
				lockPlayer(ecs, false)
				return
			}
			gate.Timer--
			if gate.Timer <= 0 {
				gate.State = components.GateTransitioning
			}
		}

		if gate.State == components.GateTransitioning {
			transitions = append(transitions, entry)
		}
	})

	// Loading swaps the scene, so it happens outside the query.
	if len(transitions) > 0 {
		s.transition(ecs, components.Gate.Get(transitions[0]))
	}
}

func (s *Services) onGateContact(ecs *ecs.ECS, gateEntry, playerEntry *donburi.Entry) {
	gate := components.Gate.Get(gateEntry)
	m, ok := s.Progress.Get()
	if !ok {
		log.Printf("[Gate] Progress not ready, ignoring contact")
		return
	}

	level := m.CurrentLevel()
	if level == 0 || cfg.Debug.SkipRequirements {
		gate.State = components.GateTransitioning
		return
	}

	if !m.HasSatisfiedObjectives(level) {
		s.rejectPlayer(ecs, m, gateEntry, playerEntry, level)
		return
	}

	_ = m.CompleteLevel(level)
	log.Printf("[Gate] Level %d complete", level)
	gate.State = components.GateEvaluating
	gate.Timer = cfg.Gate.CompletionDelay
	gate.Epoch = m.Epoch()
	gate.Succeeded = true
	lockPlayer(ecs, true)
	ObjectivesChangedEvent.Publish(ecs.World, ObjectivesChanged{Level: level})
}

func (s *Services) rejectPlayer(ecs *ecs.ECS, m *progress.Manager, gateEntry, playerEntry *donburi.Entry, level int) {
	unmet := m.UnmetObjectives(level)
	log.Printf("[Gate] Objectives not met on level %d: %s", level, strings.Join(unmet, "; "))

	ShowNotice(ecs, unmet, m.Epoch())

	gate := components.Gate.Get(gateEntry)
	gate.Flash = gween.New(1, 0, float32(cfg.Gate.FailureFlash), ease.OutQuad)
	gate.FlashLevel = 1
	gate.Succeeded = false

	applyKnockback(playerEntry, gateEntry)
}

func (s *Services) transition(ecs *ecs.ECS, gate *components.GateData) {
	resetGate(gate)

	m, ok := s.Progress.Get()
	if !ok {
		log.Printf("[Gate] Progress not ready, cannot transition")
		lockPlayer(ecs, false)
		return
	}

	levels := m.Levels()
	next := m.CurrentLevel() + 1
	if !levels.Valid(next) {
		log.Printf("[Gate] Last level finished, returning to %s", levels.Hub())
		next = 0
	}
	// The scene activation that follows must not override this.
	m.SuppressAutoSync()
	_ = m.SetCurrentLevel(next)

	if err := s.LoadLevel(levels, next); err != nil {
		lockPlayer(ecs, false)
	}
}

func (s *Services) gateCancelled(gate *components.GateData) bool {
	m, ok := s.Progress.Get()
	return ok && m.Epoch() != gate.Epoch
}

func resetGate(gate *components.GateData) {
	gate.State = components.GateIdle
	gate.Timer = 0
	gate.Succeeded = false
}

func updateGateFlash(gate *components.GateData) {
	if gate.Flash == nil {
		return
	}
	level, finished := gate.Flash.Update(1)
	gate.FlashLevel = level
	if finished {
		gate.Flash = nil
		gate.FlashLevel = 0
	}
}

func lockPlayer(ecs *ecs.ECS, locked bool) {
	if entry, ok := tags.Player.First(ecs.World); ok {
		components.Player.Get(entry).InputLocked = locked
	}
}
