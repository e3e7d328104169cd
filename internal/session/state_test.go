package session

import (
	"testing"

	"github.com/bzar/spacerocks/internal/component"
)

func newTestState() *State {
	return New(Config{StartLives: 3, MinUfoInterval: 100, MaxUfoInterval: 200, Seed: 1})
}

func TestResetStartsAtLevelOne(t *testing.T) {
	s := newTestState()
	if s.Level != 1 || s.Lives != 3 || s.Score != 0 || s.Phase != Playing {
		t.Fatalf("fresh state = %+v", s)
	}
	if s.NextUfoScore < 100 || s.NextUfoScore > 200 {
		t.Errorf("next ufo score %d outside interval", s.NextUfoScore)
	}
	if s.RespawnPending() {
		t.Error("no respawn should be pending")
	}
}

func TestUfoDueMovesThreshold(t *testing.T) {
	s := newTestState()
	s.NextUfoScore = 150
	s.AddScore(149)
	if s.UfoDue() {
		t.Fatal("ufo due below threshold")
	}
	s.AddScore(1)
	if !s.UfoDue() {
		t.Fatal("ufo not due at threshold")
	}
	if s.NextUfoScore < 250 || s.NextUfoScore > 350 {
		t.Errorf("next threshold = %d", s.NextUfoScore)
	}
	if s.UfoDue() {
		t.Error("ufo due twice for one threshold")
	}
}

func TestLoseLifeEndsGame(t *testing.T) {
	s := newTestState()
	s.LoseLife()
	s.StartRespawn(2)
	if !s.RespawnPending() || s.Phase != Playing {
		t.Fatalf("after first loss: %+v", s)
	}
	s.RespawnIn = -1
	s.LoseLife()
	if left := s.LoseLife(); left != 0 {
		t.Fatalf("lives left = %d", left)
	}
	if s.Phase != GameOver {
		t.Fatalf("phase = %s", s.Phase)
	}
	s.StartRespawn(2)
	if s.RespawnPending() {
		t.Error("respawn scheduled after game over")
	}
	if s.LoseLife() != 0 {
		t.Error("lives went negative")
	}
}

func TestHUD(t *testing.T) {
	s := newTestState()
	s.Level = 3
	s.Score = 12345
	ship := &component.Ship{Weapon: component.Rapid}
	ship.WeaponLevels[component.Rapid] = 2
	ship.WeaponLevels[component.Spread] = 1

	want := "Level: 3 | Score: 12,345 | Lives: 3 | Weapons: [L2] S1"
	if got := s.HUD(ship); got != want {
		t.Errorf("hud = %q, want %q", got, want)
	}

	ship.Shield = 2
	s.Phase = GameOver
	want = "Level: 3 | Score: 12,345 | Lives: 3 | Weapons: [L2] S1 | Shield: 2 | GAME OVER"
	if got := s.HUD(ship); got != want {
		t.Errorf("hud = %q, want %q", got, want)
	}

	s.Phase = Playing
	if got := s.HUD(nil); got != "Level: 3 | Score: 12,345 | Lives: 3 | Weapons:" {
		t.Errorf("hud without ship = %q", got)
	}
}
