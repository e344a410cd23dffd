package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/opentender/radar/internal/db"
	"github.com/opentender/radar/internal/handlers"
	"github.com/opentender/radar/internal/repository"
	"github.com/opentender/radar/internal/router"
	"github.com/opentender/radar/internal/router/config"
	"github.com/opentender/radar/internal/scoring"
	"github.com/opentender/radar/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запускает HTTP-сервер",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

	dbPool, err := db.InitDb(cmd.Context(), cfg.PostgresConn)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	defer dbPool.Close()

	profile, err := config.LoadScoringProfile(cfg.ScoringProfile)
	if err != nil {
		return fmt.Errorf("cannot load scoring profile: %w", err)
	}
	engine := scoring.NewEngine(profile)

	tenderRepo := repository.NewPostgresTenderRepository(dbPool)
	tenderService := services.NewTenderService(tenderRepo, engine)
	tenderHandler := handlers.NewTenderHandler(tenderService, log.Logger, 5*time.Second)

	routes := router.InitRoutes(tenderHandler, cfg.Origins())

	log.Info().Str("address", cfg.ServerAddress).Msg("server is listening")
	return http.ListenAndServe(cfg.ServerAddress, routes)
}

// runDBMigration применяет миграции перед стартом.
func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create a new migrate instance")
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}
	log.Info().Msg("db migrated successfully")
}
