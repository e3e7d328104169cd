package data

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/bzar/spacerocks/internal/component"
	"gopkg.in/yaml.v3"
)

// PowerupEntry is one row of the ufo drop table.
type PowerupEntry struct {
	Kind   string `yaml:"kind"`
	Weight int    `yaml:"weight"`
}

type powerupDrop struct {
	kind   component.PowerupKind
	weight int
}

// PowerupTable is the weighted drop table rolled when a ufo is destroyed.
type PowerupTable struct {
	drops []powerupDrop
	total int
}

// LoadPowerupTable loads powerups.yaml.
func LoadPowerupTable(path string) (*PowerupTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read powerup table: %w", err)
	}
	var entries []PowerupEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse powerup table: %w", err)
	}
	t := &PowerupTable{}
	for _, e := range entries {
		kind, ok := component.ParsePowerupKind(e.Kind)
		if !ok {
			return nil, fmt.Errorf("powerup table: unknown kind %q", e.Kind)
		}
		if e.Weight <= 0 {
			continue
		}
		t.drops = append(t.drops, powerupDrop{kind: kind, weight: e.Weight})
		t.total += e.Weight
	}
	if t.total == 0 {
		return nil, fmt.Errorf("powerup table: no droppable powerups")
	}
	return t, nil
}

// Roll picks a powerup kind by weight. An empty table yields a laser upgrade.
func (t *PowerupTable) Roll(r *rand.Rand) component.PowerupKind {
	if t == nil || t.total == 0 {
		return component.PowerupLaser
	}
	n := r.Intn(t.total)
	for _, d := range t.drops {
		if n < d.weight {
			return d.kind
		}
		n -= d.weight
	}
	return t.drops[len(t.drops)-1].kind
}

// Count returns the number of droppable kinds.
func (t *PowerupTable) Count() int {
	return len(t.drops)
}
