// Command migrate applies every pending SQL migration and exits. Exit code
// is 0 when all files apply cleanly and 1 on the first failure, so the
// binary can gate deployment scripts.
package main

import (
	"os"

	"github.com/oguzhan/uniregistry/internal/bootstrap"
	"github.com/oguzhan/uniregistry/internal/db"
	"github.com/oguzhan/uniregistry/internal/pkg/logger"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		os.Exit(1)
	}
	defer database.Close()

	if err := bootstrap.RunMigrations(cfg, database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Migration run failed")
		os.Exit(1)
	}

	lgr.Info().Msg("All migrations applied.")
}
