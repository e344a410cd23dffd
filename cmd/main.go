package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfgPath string

	rootCmd = &cobra.Command{
		Use:   "radar",
		Short: "radar - сервис скоринга и выдачи государственных тендеров",
	}
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "каталог с файлом конфигурации app.env")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
