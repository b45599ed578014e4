package system

import (
	"time"

	"github.com/wanderlands/server/internal/core/event"
	coresys "github.com/wanderlands/server/internal/core/system"
)

// EventSystem rotates the bus buffers and delivers last tick's events before
// this tick's simulation runs. Phase 1 (PreUpdate).
type EventSystem struct {
	bus *event.Bus
}

func NewEventSystem(bus *event.Bus) *EventSystem {
	return &EventSystem{bus: bus}
}

func (s *EventSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *EventSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
