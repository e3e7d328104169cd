package data

import (
	"fmt"
	"os"

	"github.com/bzar/spacerocks/internal/component"
	"gopkg.in/yaml.v3"
)

// WeaponEntry describes how a ship weapon fires.
type WeaponEntry struct {
	Name     string  `yaml:"name"`
	Cooldown float64 `yaml:"cooldown"` // seconds between shots
	Speed    float64 `yaml:"speed"`
	Life     float64 `yaml:"life"` // projectile lifetime, seconds
	Damage   int     `yaml:"damage"`
	Radius   float64 `yaml:"radius"`
	Length   float64 `yaml:"length"` // > 0 makes the projectile a line (beam)
	Spread   float64 `yaml:"spread"` // radians between fanned shots
	// LevelDamage is added to Damage per weapon level above 1.
	LevelDamage int `yaml:"level_damage"`
}

// ShotDamage is the damage of one projectile at the given weapon level.
func (e *WeaponEntry) ShotDamage(level int) int {
	if level < 1 {
		level = 1
	}
	return e.Damage + e.LevelDamage*(level-1)
}

// WeaponTable holds the fire parameters of every ship weapon.
type WeaponTable struct {
	weapons [component.WeaponCount]*WeaponEntry
}

// LoadWeaponTable loads weapons.yaml. Every weapon must be present.
func LoadWeaponTable(path string) (*WeaponTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weapon table: %w", err)
	}
	var entries []WeaponEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse weapon table: %w", err)
	}
	t := &WeaponTable{}
	for i := range entries {
		e := &entries[i]
		w, ok := component.ParseWeapon(e.Name)
		if !ok {
			return nil, fmt.Errorf("weapon table: unknown weapon %q", e.Name)
		}
		if e.Cooldown <= 0 || e.Life <= 0 {
			return nil, fmt.Errorf("weapon table: %s needs positive cooldown and life", e.Name)
		}
		t.weapons[w] = e
	}
	for w := component.Weapon(0); int(w) < component.WeaponCount; w++ {
		if t.weapons[w] == nil {
			return nil, fmt.Errorf("weapon table: missing %s", w)
		}
	}
	return t, nil
}

// Get returns the entry for w, or nil for an unknown weapon.
func (t *WeaponTable) Get(w component.Weapon) *WeaponEntry {
	if w < 0 || int(w) >= component.WeaponCount {
		return nil
	}
	return t.weapons[w]
}

// Count returns the number of weapons loaded.
func (t *WeaponTable) Count() int {
	n := 0
	for _, e := range t.weapons {
		if e != nil {
			n++
		}
	}
	return n
}
