package dbmigrations

import (
	cf "github.com/ChokeGuy/exchange-office/pkg/config"
	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

// RunDBMigration brings the schema up to date before the store is used.
func RunDBMigration(cfg cf.Config) {
	migration, err := migrate.New(cfg.MigrationUrl, cfg.DBSource)
	if err != nil {
		log.Fatal().Msgf("cannot create migration: %v", err)
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Msgf("failed to run migrate up: %v", err)
	}

	version, dirty, err := migration.Version()
	if err != nil && err != migrate.ErrNilVersion {
		log.Fatal().Msgf("cannot read migration version: %v", err)
	}
	if dirty {
		log.Fatal().Uint("version", version).Msg("schema is dirty, clean it up before starting")
	}

	log.Info().Uint("version", version).Msg("db schema is up to date")
}
