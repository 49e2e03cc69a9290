package main

import (
	"context"
	"log"

	"careerpilot-backend/internal/bootstrap"
	"careerpilot-backend/internal/shared/config"
	"careerpilot-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	log.Printf("listening on %s (env=%s store=%s)", addr, cfg.Env, cfg.ObjectStoreType)
	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
