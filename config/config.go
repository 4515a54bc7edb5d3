package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings for the local HTTP server. The Lambda handlers take
// no configuration.
type Config struct {
	Environment string `env:"RETAIL_ENV" envDefault:"development"`
	ServiceName string `env:"RETAIL_SERVICE_NAME" envDefault:"retail-intelligence-api"`
	HTTPAddr    string `env:"RETAIL_HTTP_ADDR" envDefault:":3000"`
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
