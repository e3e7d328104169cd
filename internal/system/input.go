package system

import (
	"time"

	"github.com/bzar/spacerocks/internal/component"
	coresys "github.com/bzar/spacerocks/internal/core/system"
	"github.com/bzar/spacerocks/internal/world"
)

// InputSystem drains the controls queued by the host since the last tick
// and hands them to the ship. Phase 0 (Input).
//
// The latest steering state wins; one-shot intents (fire, weapon changes)
// are kept if any queued sample carried them so a press between ticks is
// never lost.
type InputSystem struct {
	world *world.State
	in    <-chan component.Controls
	last  component.Controls
}

func NewInputSystem(ws *world.State, in <-chan component.Controls) *InputSystem {
	return &InputSystem{world: ws, in: in}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	var merged component.Controls
	got := false
drain:
	for {
		select {
		case c := <-s.in:
			merged = mergeControls(merged, c, got)
			got = true
		default:
			break drain
		}
	}
	if !got {
		// hold steering, drop one-shot intents
		merged = component.Controls{Throttle: s.last.Throttle, Turn: s.last.Turn, Fire: s.last.Fire}
	}
	s.last = merged

	if _, ship, ok := s.world.Ship(); ok {
		ship.Controls = merged
	}
}

func mergeControls(acc, c component.Controls, have bool) component.Controls {
	if !have {
		return c
	}
	acc.Throttle = c.Throttle
	acc.Turn = c.Turn
	acc.Fire = acc.Fire || c.Fire
	if c.Select != 0 {
		acc.Select = c.Select
	}
	acc.NextWeapon = acc.NextWeapon || c.NextWeapon
	acc.PrevWeapon = acc.PrevWeapon || c.PrevWeapon
	return acc
}
