package session

import (
	"strconv"
	"strings"

	"github.com/bzar/spacerocks/internal/component"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hudPrinter = message.NewPrinter(language.English)

// HUD renders the status line, e.g.
//
//	Level: 3 | Score: 12,345 | Lives: 2 | Weapons: [L2] S1
//
// The selected weapon is bracketed. ship may be nil while respawning, in
// which case the weapon list is empty.
func (s *State) HUD(ship *component.Ship) string {
	var b strings.Builder
	b.WriteString("Level: ")
	b.WriteString(strconv.Itoa(s.Level))
	b.WriteString(" | Score: ")
	b.WriteString(hudPrinter.Sprintf("%d", s.Score))
	b.WriteString(" | Lives: ")
	b.WriteString(strconv.Itoa(s.Lives))
	b.WriteString(" | Weapons:")
	if ship != nil {
		for w := component.Weapon(0); int(w) < component.WeaponCount; w++ {
			lvl := ship.WeaponLevels[w]
			if lvl == 0 {
				continue
			}
			b.WriteByte(' ')
			tag := w.Letter() + strconv.Itoa(lvl)
			if w == ship.Weapon {
				tag = "[" + tag + "]"
			}
			b.WriteString(tag)
		}
		if ship.Shield > 0 {
			b.WriteString(" | Shield: ")
			b.WriteString(strconv.Itoa(ship.Shield))
		}
	}
	if s.Phase == GameOver {
		b.WriteString(" | GAME OVER")
	}
	return b.String()
}
