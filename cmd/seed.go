package main

import (
	"fmt"

	"github.com/opentender/radar/internal/db"
	"github.com/opentender/radar/internal/repository"
	"github.com/opentender/radar/internal/router/config"
	"github.com/opentender/radar/internal/scoring"
	"github.com/opentender/radar/internal/seed"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var seedCount int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Наполняет базу демонстрационными тендерами с рассчитанными скорами",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 50, "количество генерируемых тендеров")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
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

	tenderRepo := repository.NewPostgresTenderRepository(dbPool)
	return seed.Run(cmd.Context(), tenderRepo, scoring.NewEngine(profile), seedCount, log.Logger)
}
