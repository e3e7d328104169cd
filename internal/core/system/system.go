package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: apply player controls
	PhasePreUpdate               // 1: deliver last tick's events
	PhaseUpdate                  // 2: movement, timers, ufo behaviour
	PhaseCollision               // 3: detect, then resolve
	PhaseSpawn                   // 4: apply queued spawn requests
	PhaseCleanup                 // 5: destroy queued entities
	PhaseTransition              // 6: level clear, new game
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "pre_update"
	case PhaseUpdate:
		return "update"
	case PhaseCollision:
		return "collision"
	case PhaseSpawn:
		return "spawn"
	case PhaseCleanup:
		return "cleanup"
	case PhaseTransition:
		return "transition"
	}
	return "unknown"
}

// System is the interface every ECS system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
