// Command seed writes a composition_types row for every registry template
// into the configured store. The local engine seeds itself on open; this
// exists mainly to prepare a fresh Postgres database.
package main

import (
	"context"
	"log"

	"github.com/PatriceWisniewsky/MotionCut/config"
	"github.com/PatriceWisniewsky/MotionCut/internal/core/composition"
	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
	"github.com/PatriceWisniewsky/MotionCut/internal/store"
	"github.com/PatriceWisniewsky/MotionCut/internal/store/local"
	"github.com/PatriceWisniewsky/MotionCut/internal/store/postgres"
)

func main() {
	cfg := config.Load()

	var db store.Executor
	if cfg.Storage.Mode == config.StoragePostgres {
		client, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer client.Close()
		db = client
	} else {
		client, err := local.Open(cfg.Storage.DataDir)
		if err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}
		db = client
	}

	svc := composition.NewService(composition.NewRepository(db))
	if err := svc.EnsureSeeded(context.Background()); err != nil {
		log.Fatalf("Failed to seed composition types: %v", err)
	}

	log.Printf("Seeded %d composition types", len(registry.All()))
}
