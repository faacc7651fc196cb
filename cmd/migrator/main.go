package main

import (
	"os"

	"wallet-ledger/internal/config"
	"wallet-ledger/internal/database"
	"wallet-ledger/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(false, "info")
		log.Error().Err(err).Msg("Failed to load config")
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Pretty, cfg.Log.Level)

	version, err := database.Migrate(cfg.Database.URL())
	if err != nil {
		log.Error().Err(err).Msg("Migration run failed")
		os.Exit(1)
	}

	log.Info().Uint("version", version).Msg("Migration run finished successfully")
}
