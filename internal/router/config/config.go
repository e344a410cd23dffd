package config

import (
	"strings"

	"github.com/opentender/radar/internal/scoring"

	"github.com/spf13/viper"
)

// Config - структура для хранения конфигураций приложения
type Config struct {
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`
	PostgresConn   string `mapstructure:"POSTGRES_CONN"`
	MigrationURL   string `mapstructure:"MIGRATION_URL"`
	ScoringProfile string `mapstructure:"SCORING_PROFILE"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"` // список источников через запятую
}

// LoadConfig загружает конфигурацию из файла
func LoadConfig(path string) (cfg Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}
	err = viper.Unmarshal(&cfg)
	return
}

// Origins возвращает разрешённые источники для CORS.
func (c Config) Origins() []string {
	if c.AllowedOrigins == "" {
		return []string{"http://localhost:5173", "http://localhost:3000"}
	}
	parts := strings.Split(c.AllowedOrigins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// LoadScoringProfile читает YAML-профиль скоринга поверх профиля по
// умолчанию. Пустой путь означает профиль по умолчанию.
func LoadScoringProfile(path string) (scoring.Config, error) {
	cfg := scoring.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
