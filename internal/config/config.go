package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	GroupKey   string
	RulesFile  string
	HeaderFile string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		GroupKey:   getEnv("WEBLATE_GROUP_KEY", "weblate"),
		RulesFile:  getEnv("WEBLATE_RULES_FILE", ""),
		HeaderFile: getEnv("WEBLATE_HEADER_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
