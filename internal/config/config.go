package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DatabaseURL       string
	Token             string
	AdminChatID       int64
	WebAppURL         string
	WebAppTokenSecret string
	OpsAddress        string
}

func New() (*Config, error) {
	cfg := &Config{}

	flag.StringVar(&cfg.DatabaseURL, "d", "", "database connection URL")
	flag.StringVar(&cfg.Token, "t", "", "telegram bot token")
	flag.StringVar(&cfg.WebAppURL, "w", "https://bodrumbot.github.io/11", "web app base URL")
	flag.StringVar(&cfg.OpsAddress, "a", ":8080", "ops server address and port")
	adminID := flag.Int64("c", 0, "primary admin chat id")
	flag.Parse()
	cfg.AdminChatID = *adminID

	// DATABASE_PUBLIC_URL wins: it is the address reachable from outside
	// the deployment's private network.
	cfg.DatabaseURL = getEnv("DATABASE_PUBLIC_URL", getEnv("DATABASE_URL", cfg.DatabaseURL))
	cfg.Token = getEnv("TOKEN", cfg.Token)
	cfg.WebAppURL = getEnv("WEBAPP_URL", cfg.WebAppURL)
	cfg.WebAppTokenSecret = getEnv("WEBAPP_TOKEN_SECRET", cfg.WebAppTokenSecret)
	cfg.OpsAddress = getEnv("OPS_ADDRESS", cfg.OpsAddress)

	if raw, ok := os.LookupEnv("ADMIN_CHAT_ID"); ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse ADMIN_CHAT_ID: %w", err)
		}
		cfg.AdminChatID = id
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_PUBLIC_URL or DATABASE_URL must be set")
	}
	if cfg.Token == "" {
		return nil, errors.New("TOKEN must be set")
	}
	if cfg.AdminChatID == 0 {
		return nil, errors.New("ADMIN_CHAT_ID must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
