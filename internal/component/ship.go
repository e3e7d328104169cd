package component

// Weapon is the ship's selected gun.
type Weapon int

const (
	Rapid Weapon = iota
	Spread
	Beam
	Plasma
	weaponCount
)

// WeaponCount is the number of ship weapons.
const WeaponCount = int(weaponCount)

// MaxWeaponLevel caps powerup upgrades per weapon.
const MaxWeaponLevel = 4

func (w Weapon) String() string {
	switch w {
	case Rapid:
		return "rapid"
	case Spread:
		return "spread"
	case Beam:
		return "beam"
	case Plasma:
		return "plasma"
	}
	return "unknown"
}

// Letter is the HUD abbreviation of w.
func (w Weapon) Letter() string {
	switch w {
	case Rapid:
		return "L"
	case Spread:
		return "S"
	case Beam:
		return "B"
	case Plasma:
		return "P"
	}
	return "?"
}

// ParseWeapon maps a weapon name to its value.
func ParseWeapon(name string) (Weapon, bool) {
	for w := Rapid; w < weaponCount; w++ {
		if w.String() == name {
			return w, true
		}
	}
	return 0, false
}

// Turn is the steering input.
type Turn int

const (
	TurnNone Turn = iota
	TurnLeft
	TurnRight
)

// Controls is the per-tick player intent, filled by the host's input layer.
type Controls struct {
	Throttle   bool
	Turn       Turn
	Fire       bool
	Select     int // 1..4 selects a weapon directly, 0 = no change
	NextWeapon bool
	PrevWeapon bool
}

type Ship struct {
	Controls        Controls
	Weapon          Weapon
	WeaponLevels    [WeaponCount]int // 0 = not available
	Cooldown        float64
	Shield          int
	Invulnerability float64
}

// Invulnerable reports whether the ship currently ignores hits.
func (s *Ship) Invulnerable() bool {
	return s.Invulnerability > 0
}
