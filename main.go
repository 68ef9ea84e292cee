package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/jakovjj/tycooner/internal/config"
	"github.com/jakovjj/tycooner/internal/econ"
	"github.com/jakovjj/tycooner/internal/game"
	"github.com/jakovjj/tycooner/internal/serverapp"
	"github.com/jakovjj/tycooner/internal/state"
)

const PORT = "8787"

// Dev entrypoint: env-driven balance, fixed port, pre-seeded starter
// territory. The production entrypoint lives in cmd/server.
func main() {
	ctx := context.Background()

	cfg := &config.Config{Server: config.ServerConfig{Port: PORT}}
	cfg.ApplyDefaults()
	bal := config.FromEnv()
	cfg.Balance = &bal

	app, err := serverapp.New(serverapp.Options{
		Config: cfg,
		Logger: log.Default(),
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := seedGame(app.Server.Actions); err != nil {
		log.Fatal(err)
	}

	go app.Hub.Run()
	go app.Loop.Run(ctx)

	addr := ":" + PORT
	fmt.Printf("tycooner listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, app.Handler))
}

// seedGame gives the dev server a small running economy so the map is not
// empty on first load.
func seedGame(actions *game.Actions) error {
	if _, err := actions.UnlockCountry("DE", false); err != nil {
		return err
	}
	if _, err := actions.BuildWarehouse("DE"); err != nil {
		return err
	}
	if _, err := actions.BuildFacility("DE", state.FacilityFarm); err != nil {
		return err
	}
	if _, err := actions.BuildFacility("DE", state.FacilityRanch); err != nil {
		return err
	}
	if _, err := actions.BuildFactory("DE", econ.GoodElectronics); err != nil {
		return err
	}
	return nil
}
