// Package session holds the per-game state that outlives individual
// entities: level, score, lives and the game phase. It is owned by the game
// loop and passed explicitly into the systems that read or change it.
package session

import "math/rand"

// Phase is the coarse state of a game session.
type Phase uint8

const (
	Playing Phase = iota
	LevelCleared
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case LevelCleared:
		return "level_cleared"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Config is the subset of game configuration the session needs.
type Config struct {
	StartLives     int
	MinUfoInterval int
	MaxUfoInterval int
	Seed           int64
}

type State struct {
	Level        int
	Score        int
	Lives        int
	NextUfoScore int
	Phase        Phase

	// RespawnIn counts down after the ship is lost; a new ship is spawned
	// when it reaches zero. Negative means no respawn is pending.
	RespawnIn float64

	Tick uint64
	Rand *rand.Rand

	cfg Config
}

func New(cfg Config) *State {
	s := &State{
		cfg:  cfg,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
	s.Reset()
	return s
}

// Reset starts a fresh game at level 1. The random stream continues so that
// consecutive games differ.
func (s *State) Reset() {
	s.Level = 1
	s.Score = 0
	s.Lives = s.cfg.StartLives
	s.Phase = Playing
	s.RespawnIn = -1
	s.NextUfoScore = s.ufoInterval()
}

func (s *State) ufoInterval() int {
	lo, hi := s.cfg.MinUfoInterval, s.cfg.MaxUfoInterval
	if hi <= lo {
		return lo
	}
	return lo + s.Rand.Intn(hi-lo+1)
}

func (s *State) AddScore(n int) {
	s.Score += n
}

// UfoDue reports whether the score has reached the next ufo threshold and,
// if so, moves the threshold forward by a random interval.
func (s *State) UfoDue() bool {
	if s.Phase != Playing || s.Score < s.NextUfoScore {
		return false
	}
	s.NextUfoScore = s.Score + s.ufoInterval()
	return true
}

// LoseLife takes a life and moves to GameOver when none are left.
// Returns the lives remaining.
func (s *State) LoseLife() int {
	if s.Lives > 0 {
		s.Lives--
	}
	if s.Lives == 0 {
		s.Phase = GameOver
	}
	return s.Lives
}

func (s *State) GainLife() {
	s.Lives++
}

// StartRespawn schedules a new ship after delay seconds unless the game is over.
func (s *State) StartRespawn(delay float64) {
	if s.Phase == GameOver {
		return
	}
	s.RespawnIn = delay
}

// RespawnPending reports whether a ship respawn is counting down.
func (s *State) RespawnPending() bool {
	return s.RespawnIn >= 0
}

// AdvanceLevel moves to the next level and resumes play.
func (s *State) AdvanceLevel() {
	s.Level++
	s.Phase = Playing
}
