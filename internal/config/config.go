package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

type Config struct {
	Address       string `env:"RUN_ADDRESS"`
	DatabaseURI   string `env:"DATABASE_URI"`
	Password      string `env:"SHOP_PASSWORD"`
	TokenSecret   string `env:"TOKEN_SECRET"`
	WebhookURL    string `env:"WEBHOOK_URL"`
	UseMemStorage bool   `env:"USE_MEM_STORAGE"`
}

func NewConfig() (Config, error) {
	_ = godotenv.Load()

	config := Config{}

	config.parseFlags()

	if err := env.Parse(&config); err != nil {
		return Config{}, err
	}

	if err := config.validateConfig(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c *Config) parseFlags() {
	flag.StringVar(&c.Address, "a", "localhost:8080", "Service address")
	flag.StringVar(&c.DatabaseURI, "d", c.DatabaseURI, "Database URI")
	flag.StringVar(&c.WebhookURL, "w", c.WebhookURL, "Notification webhook URL")
	flag.BoolVar(&c.UseMemStorage, "m", c.UseMemStorage, "Use in-memory storage")

	flag.Parse()
}

func (c *Config) validateConfig() error {
	if c.Password == "" {
		return fmt.Errorf("SHOP_PASSWORD is required")
	}

	if c.TokenSecret == "" {
		return fmt.Errorf("TOKEN_SECRET is required")
	}

	if !c.UseMemStorage && c.DatabaseURI == "" {
		return fmt.Errorf("DATABASE_URI is required")
	}

	return nil
}
