package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakovjj/tycooner/internal/sim"
	"github.com/jakovjj/tycooner/internal/state"
)

func newLoop(a *Actions) *Loop {
	return &Loop{
		Store:         a.Store,
		Engine:        sim.Engine{Balance: a.Balance},
		Challenges:    a.Challenges,
		Clock:         a.Clock,
		TickInterval:  time.Hour,
		CheckInterval: time.Hour,
	}
}

func TestLoopTick_AdvancesDayAndFansOut(t *testing.T) {
	a, _ := newActions(t)
	loop := newLoop(a)

	var gotDay int
	loop.OnTick = func(s state.GameState, rep sim.Report) {
		gotDay = rep.Day
	}

	s, rep := loop.Tick()
	assert.Equal(t, 1, s.CurrentDay)
	assert.Equal(t, 1, rep.Day)
	assert.Equal(t, 1, gotDay)
	assert.Equal(t, 1, a.Store.Get().CurrentDay)
}

func TestLoopTick_SkipsWhileGameOver(t *testing.T) {
	a, _ := newActions(t)
	loop := newLoop(a)

	a.Store.Update(func(s state.GameState) state.GameState {
		s.GameOver = true
		return s
	})

	fired := false
	loop.OnTick = func(state.GameState, sim.Report) { fired = true }

	s, rep := loop.Tick()
	assert.Equal(t, 0, s.CurrentDay)
	assert.Equal(t, 0, rep.Day)
	assert.False(t, fired)
}

func TestLoopTick_ResumesAfterRestart(t *testing.T) {
	a, _ := newActions(t)
	loop := newLoop(a)

	a.Store.Update(func(s state.GameState) state.GameState {
		s.GameOver = true
		return s
	})
	_, rep := loop.Tick()
	require.Equal(t, 0, rep.Day)

	a.Restart()
	s, rep := loop.Tick()
	assert.Equal(t, 1, rep.Day)
	assert.Equal(t, 1, s.CurrentDay)
}
