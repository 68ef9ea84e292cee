package game

import (
	"context"
	"time"

	"github.com/jakovjj/tycooner/internal/challenge"
	"github.com/jakovjj/tycooner/internal/sim"
	"github.com/jakovjj/tycooner/internal/state"
)

// Loop drives the two periodic jobs: the day tick at the configured tick
// interval and the challenge deadline check every second. Both publish
// through the store, so they serialize against player transactions.
type Loop struct {
	Store      *state.Store
	Engine     sim.Engine
	Challenges *challenge.Controller
	Clock      sim.Clock

	TickInterval  time.Duration
	CheckInterval time.Duration

	// OnTick, when set, receives every post-tick snapshot and report.
	// Used to fan out to telemetry and websocket subscribers.
	OnTick func(state.GameState, sim.Report)
}

// Run blocks until the context is cancelled. Ticks are skipped while the
// game is over; a restart resumes them.
func (l *Loop) Run(ctx context.Context) {
	tick := time.NewTicker(l.TickInterval)
	defer tick.Stop()
	check := time.NewTicker(l.CheckInterval)
	defer check.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			l.Tick()
		case <-check.C:
			l.Store.Update(func(s state.GameState) state.GameState {
				return l.Challenges.CheckExpiry(s, l.Clock.Now())
			})
		}
	}
}

// Tick advances one day and fans the result out. Safe to call manually,
// the ops endpoint uses it to step a paused game.
func (l *Loop) Tick() (state.GameState, sim.Report) {
	var rep sim.Report
	next := l.Store.Update(func(s state.GameState) state.GameState {
		if s.GameOver {
			return s
		}
		var out state.GameState
		out, rep = l.Engine.Tick(s)
		return out
	})
	if rep.Day == 0 {
		return next, rep
	}
	if l.OnTick != nil {
		l.OnTick(next, rep)
	}
	return next, rep
}
