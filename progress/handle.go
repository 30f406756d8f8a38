package progress

// Handle is a late-bound reference to the Manager. Collaborators hold the
// handle from scene construction on; Get reports false until the manager has
// been initialized and published with Set.
type Handle struct {
	m *Manager
}

func NewHandle() *Handle {
	return &Handle{}
}

func (h *Handle) Set(m *Manager) {
	h.m = m
}

func (h *Handle) Clear() {
	h.m = nil
}

func (h *Handle) Get() (*Manager, bool) {
	if h == nil || h.m == nil {
		return nil, false
	}
	return h.m, true
}
