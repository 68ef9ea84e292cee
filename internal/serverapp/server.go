// Package serverapp assembles the full application: config, world data,
// state store, simulation loop, challenge controller and the HTTP surface.
package serverapp

import (
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jakovjj/tycooner/internal/challenge"
	"github.com/jakovjj/tycooner/internal/config"
	"github.com/jakovjj/tycooner/internal/econ"
	"github.com/jakovjj/tycooner/internal/game"
	"github.com/jakovjj/tycooner/internal/geo"
	"github.com/jakovjj/tycooner/internal/httpmw"
	"github.com/jakovjj/tycooner/internal/server"
	"github.com/jakovjj/tycooner/internal/sim"
	"github.com/jakovjj/tycooner/internal/state"
	"github.com/jakovjj/tycooner/internal/telemetry"
	staticfiles "github.com/jakovjj/tycooner/static"
)

type Options struct {
	Config *config.Config
	Logger *log.Logger
	Clock  sim.Clock

	// UseDiskStatic serves assets from ./static instead of the embedded
	// copies, for frontend iteration.
	UseDiskStatic bool
	StaticDir     string
}

// App is the assembled application. Loop.Run still has to be started by
// the caller, usually in its own goroutine.
type App struct {
	Handler http.Handler
	Server  *server.App
	Loop    *game.Loop
	Hub     *server.Hub
}

func New(opts Options) (*App, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = sim.RealClock{}
	}
	if opts.StaticDir == "" {
		opts.StaticDir = "static"
	}
	cfg := opts.Config
	bal := cfg.GameBalance()

	features, err := geo.Load()
	if err != nil {
		return nil, err
	}
	countries := econ.BuildCountries(features, econ.CountryProperties(), bal)
	store := state.NewStore(state.NewGame(countries, econ.Goods(), bal))

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	challenges := challenge.New(rand.New(rand.NewSource(seed)), cfg.ChallengeDeadline())

	actions := &game.Actions{
		Store:      store,
		Balance:    bal,
		Challenges: challenges,
		Clock:      opts.Clock,
	}

	hub := server.NewHub(opts.Logger)
	events := telemetry.NewMemoryRepository()

	loop := &game.Loop{
		Store:         store,
		Engine:        sim.Engine{Balance: bal},
		Challenges:    challenges,
		Clock:         opts.Clock,
		TickInterval:  cfg.TickInterval(),
		CheckInterval: cfg.ChallengeCheckInterval(),
		OnTick: func(s state.GameState, rep sim.Report) {
			_ = events.RecordEvent(telemetry.EventDayTick, telemetry.EventMetadata{
				"day":            rep.Day,
				"units_produced": rep.UnitsProduced,
				"units_moved":    rep.UnitsMoved,
				"logistics_cost": rep.LogisticsCost,
			})
			hub.BroadcastTick(s, rep)
		},
	}

	app := &server.App{
		Store:     store,
		Actions:   actions,
		Loop:      loop,
		Telemetry: events,
		Hub:       hub,
		BootNow:   opts.Clock.Now(),
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}

	server.RegisterAPIRoutes(mux, rr, app)
	server.RegisterAdminUI(mux, rr, cfg.Server.Port)
	server.RegisterWS(mux, app)

	assets := http.FS(staticfiles.EmbeddedFS())
	if opts.UseDiskStatic {
		assets = http.Dir(opts.StaticDir)
	}
	server.RegisterStatic(mux, assets)

	handler := httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	)

	return &App{
		Handler: handler,
		Server:  app,
		Loop:    loop,
		Hub:     hub,
	}, nil
}

func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TYCOONER_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
