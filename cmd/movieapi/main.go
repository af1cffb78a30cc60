package main

import (
	"log"

	"github.com/Yatnesh1410/MovieAPI/internal/app"
	"github.com/Yatnesh1410/MovieAPI/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
