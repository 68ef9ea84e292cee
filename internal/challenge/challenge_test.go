package challenge

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakovjj/tycooner/internal/config"
	"github.com/jakovjj/tycooner/internal/econ"
	"github.com/jakovjj/tycooner/internal/geo"
	"github.com/jakovjj/tycooner/internal/state"
)

func newGameForTest(t *testing.T) state.GameState {
	t.Helper()
	features, err := geo.Load()
	require.NoError(t, err)
	bal := config.Default()
	countries := econ.BuildCountries(features, econ.CountryProperties(), bal)
	return state.NewGame(countries, econ.Goods(), bal)
}

func TestNext_TargetIsLockedNeighborWithDeadline(t *testing.T) {
	s := newGameForTest(t)
	s.UnlockedCountries = []string{"DE"}

	c := New(rand.New(rand.NewSource(1)), 5*time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	next := c.Next(s, now)

	require.NotEmpty(t, next.ChallengeTargetCountryID)
	assert.Contains(t, s.Countries["DE"].Neighbors, next.ChallengeTargetCountryID)
	assert.False(t, next.IsUnlocked(next.ChallengeTargetCountryID))
	require.NotNil(t, next.ChallengeDeadline)
	assert.Equal(t, now.Add(5*time.Minute), *next.ChallengeDeadline)
	assert.Equal(t, StatusActive, StatusOf(next))
}

func TestNext_DeterministicUnderFixedSeed(t *testing.T) {
	s := newGameForTest(t)
	s.UnlockedCountries = []string{"DE", "FR"}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	a := New(rand.New(rand.NewSource(42)), 5*time.Minute).Next(s, now)
	b := New(rand.New(rand.NewSource(42)), 5*time.Minute).Next(s, now)
	assert.Equal(t, a.ChallengeTargetCountryID, b.ChallengeTargetCountryID)
}

func TestNext_UniformOverCandidates(t *testing.T) {
	s := newGameForTest(t)
	s.UnlockedCountries = []string{"PT"} // single neighbor: ES

	c := New(rand.New(rand.NewSource(7)), 5*time.Minute)
	now := time.Now()

	seen := map[string]int{}
	for i := 0; i < 20; i++ {
		next := c.Next(s, now)
		seen[next.ChallengeTargetCountryID]++
	}
	assert.Equal(t, map[string]int{"ES": 20}, seen)
}

func TestNext_FallsBackToAllLockedWhenNoNeighborEligible(t *testing.T) {
	// Synthetic map: the unlocked country is an island, the two locked
	// countries only neighbor each other.
	s := newGameForTest(t)
	s.Countries = map[string]econ.Country{
		"AA": {ID: "AA", Neighbors: []string{}},
		"BB": {ID: "BB", Neighbors: []string{"CC"}},
		"CC": {ID: "CC", Neighbors: []string{"BB"}},
	}
	s.UnlockedCountries = []string{"AA"}

	c := New(rand.New(rand.NewSource(3)), 5*time.Minute)
	next := c.Next(s, time.Now())

	require.NotEmpty(t, next.ChallengeTargetCountryID)
	assert.Contains(t, []string{"BB", "CC"}, next.ChallengeTargetCountryID)
}

func TestNext_AllUnlockedIsVictory(t *testing.T) {
	s := newGameForTest(t)
	for id := range s.Countries {
		s.UnlockedCountries = append(s.UnlockedCountries, id)
	}

	c := New(rand.New(rand.NewSource(1)), 5*time.Minute)
	next := c.Next(s, time.Now())

	assert.True(t, next.GameOver)
	assert.Empty(t, next.ChallengeTargetCountryID)
	assert.Nil(t, next.ChallengeDeadline)
	assert.Equal(t, StatusVictory, StatusOf(next))
}

func TestCheckExpiry_FlipsGameOverAfterDeadline(t *testing.T) {
	s := newGameForTest(t)
	s.UnlockedCountries = []string{"DE"}
	deadline := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ChallengeTargetCountryID = "FR"
	s.ChallengeDeadline = &deadline

	c := New(rand.New(rand.NewSource(1)), 5*time.Minute)

	before := c.CheckExpiry(s, deadline.Add(-time.Second))
	assert.False(t, before.GameOver)

	after := c.CheckExpiry(s, deadline.Add(time.Second))
	assert.True(t, after.GameOver)
	assert.Equal(t, StatusExpired, StatusOf(after))
}

func TestCheckExpiry_CompletedTargetReselects(t *testing.T) {
	s := newGameForTest(t)
	s.UnlockedCountries = []string{"DE", "FR"}
	deadline := time.Now().Add(time.Minute)
	s.ChallengeTargetCountryID = "FR" // already unlocked
	s.ChallengeDeadline = &deadline

	c := New(rand.New(rand.NewSource(1)), 5*time.Minute)
	next := c.CheckExpiry(s, time.Now())

	assert.False(t, next.GameOver)
	assert.NotEqual(t, "FR", next.ChallengeTargetCountryID)
	assert.False(t, next.IsUnlocked(next.ChallengeTargetCountryID))
}

func TestStatusOf_NoTarget(t *testing.T) {
	s := newGameForTest(t)
	assert.Equal(t, StatusNoTarget, StatusOf(s))
}
