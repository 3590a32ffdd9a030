package main

import (
	"log"

	"github.com/jengzang/acp-backend-go/internal/api"
	"github.com/jengzang/acp-backend-go/internal/config"
	"github.com/jengzang/acp-backend-go/internal/store"
)

func main() {
	cfg := config.Load()

	// One in-memory dataset store for the process lifetime.
	st := store.New()

	router := api.SetupRouter(cfg, st)

	log.Printf("Server starting on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
