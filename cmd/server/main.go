package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jakovjj/tycooner/internal/config"
	"github.com/jakovjj/tycooner/internal/serverapp"
)

func main() {
	cfg, err := config.Load("tycooner.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	app, err := serverapp.New(serverapp.Options{
		Config:        cfg,
		Logger:        log.Default(),
		UseDiskStatic: serverapp.UseDiskStaticByEnv(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	go app.Hub.Run()
	if cfg.Simulation.AutoStart {
		go app.Loop.Run(context.Background())
	}

	addr := ":" + cfg.Server.Port
	log.Printf("listening on http://localhost%s", addr)
	log.Fatal(http.ListenAndServe(addr, app.Handler))
}
