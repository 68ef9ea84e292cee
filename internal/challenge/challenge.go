// Package challenge drives the timed unlock progression: after each unlock a
// new target country is drawn from the neighbors of owned territory and must
// itself be unlocked before the deadline.
package challenge

import (
	"math/rand"
	"sort"
	"time"

	"github.com/jakovjj/tycooner/internal/state"
)

// Status is the controller's derived state machine position.
type Status string

const (
	StatusNoTarget Status = "no-target"
	StatusActive   Status = "active"
	StatusExpired  Status = "expired"
	StatusVictory  Status = "victory"
)

// Controller selects targets and enforces deadlines. Rand is injected so
// tests can seed determinism.
type Controller struct {
	Rand     *rand.Rand
	Deadline time.Duration
}

func New(rng *rand.Rand, deadline time.Duration) *Controller {
	if deadline <= 0 {
		deadline = 5 * time.Minute
	}
	return &Controller{Rand: rng, Deadline: deadline}
}

// Next picks the next target: uniformly among locked countries adjacent to
// any unlocked country, falling back to all locked countries when the
// unlocked set has no locked neighbor. With nothing left to unlock the game
// is won and over.
func (c *Controller) Next(s state.GameState, now time.Time) state.GameState {
	next := s.Clone()

	if len(next.UnlockedCountries) >= len(next.Countries) {
		next.ChallengeTargetCountryID = ""
		next.ChallengeDeadline = nil
		next.GameOver = true
		return next
	}

	locked := map[string]bool{}
	for id := range next.Countries {
		if !next.IsUnlocked(id) {
			locked[id] = true
		}
	}

	candidateSet := map[string]bool{}
	for _, id := range next.UnlockedCountries {
		country, ok := next.Countries[id]
		if !ok {
			continue
		}
		for _, n := range country.Neighbors {
			if locked[n] {
				candidateSet[n] = true
			}
		}
	}

	candidates := sortedIDs(candidateSet)
	if len(candidates) == 0 {
		candidates = sortedIDs(locked)
	}
	if len(candidates) == 0 {
		next.ChallengeTargetCountryID = ""
		next.ChallengeDeadline = nil
		next.GameOver = true
		return next
	}

	target := candidates[c.Rand.Intn(len(candidates))]
	deadline := now.Add(c.Deadline)
	next.ChallengeTargetCountryID = target
	next.ChallengeDeadline = &deadline
	return next
}

// CheckExpiry flips the game over when the deadline has passed with the
// target still locked. Called by the periodic 1-second driver.
func (c *Controller) CheckExpiry(s state.GameState, now time.Time) state.GameState {
	if s.GameOver {
		return s
	}
	if s.ChallengeDeadline != nil && now.After(*s.ChallengeDeadline) {
		next := s.Clone()
		next.GameOver = true
		return next
	}
	// Defensive catch-up: a target unlocked out of band re-triggers selection.
	if s.ChallengeTargetCountryID != "" && s.IsUnlocked(s.ChallengeTargetCountryID) {
		return c.Next(s, now)
	}
	return s
}

// StatusOf derives the state-machine position from a snapshot.
func StatusOf(s state.GameState) Status {
	switch {
	case s.GameOver && len(s.UnlockedCountries) >= len(s.Countries):
		return StatusVictory
	case s.GameOver:
		return StatusExpired
	case s.ChallengeTargetCountryID == "":
		return StatusNoTarget
	default:
		return StatusActive
	}
}

func sortedIDs(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	// Stable candidate order so a seeded Rand draws reproducibly.
	sort.Strings(out)
	return out
}
