package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgress is registered first so the manager's per-frame state is
// reset before any gameplay system runs.
func (s *Services) UpdateProgress(ecs *ecs.ECS) {
	if m, ok := s.Progress.Get(); ok {
		m.Tick()
	}
}
