package component

// PowerupKind is what a powerup does when the ship picks it up.
type PowerupKind int

const (
	PowerupLaser PowerupKind = iota
	PowerupSpread
	PowerupBeam
	PowerupPlasma
	PowerupExtraLife
	PowerupLoseLife
	PowerupShield
	powerupCount
)

// PowerupKinds is the number of powerup kinds.
const PowerupKinds = int(powerupCount)

var powerupNames = [...]string{
	"laser", "spread", "beam", "plasma", "extra_life", "lose_life", "shield",
}

func (k PowerupKind) String() string {
	if k < 0 || k >= powerupCount {
		return "unknown"
	}
	return powerupNames[k]
}

// ParsePowerupKind maps a name from the powerup table to its kind.
func ParsePowerupKind(name string) (PowerupKind, bool) {
	for i, n := range powerupNames {
		if n == name {
			return PowerupKind(i), true
		}
	}
	return 0, false
}

// Weapon returns the weapon a weapon powerup upgrades.
func (k PowerupKind) Weapon() (Weapon, bool) {
	switch k {
	case PowerupLaser:
		return Rapid, true
	case PowerupSpread:
		return Spread, true
	case PowerupBeam:
		return Beam, true
	case PowerupPlasma:
		return Plasma, true
	}
	return 0, false
}

type Powerup struct {
	Kind PowerupKind
}
