package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: drain session queues, dispatch packets
	PhasePreUpdate               // 1: deliver last tick's events
	PhaseUpdate                  // 2: streaming grids
	PhasePostUpdate              // 3: interaction prompts, props, ambience
	PhaseOutput                  // 4: flush session buffers
	PhasePersist                 // 5: batch save dirty players
	PhaseCleanup                 // 6: tear down dead sessions
)

// System is the interface every game-loop system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
