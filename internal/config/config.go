// Package config loads runtime configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all runtime configuration for the bot
type Config struct {
	// DiscordToken authenticates the bot with Discord
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`

	// ApplicationID is the Discord application ID; falls back to the
	// session user when empty
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID scopes command registration to one guild (useful in
	// development); empty registers commands globally
	GuildID string `env:"GUILD_ID"`

	// MaintainerID is the Discord user allowed to run /refresh
	MaintainerID string `env:"MAINTAINER_ID"`

	// RedisAddr is the address of the Redis server holding snapshots
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the Redis password, empty for none
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the Redis database number
	RedisDB int `env:"REDIS_DB" envDefault:"0"`

	// DailySpinCap is the slot machine allowance granted per refresh
	DailySpinCap int `env:"DAILY_SPIN_CAP" envDefault:"3"`

	// RefreshInterval is how often spin allowances are restored and
	// state is snapshotted
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"24h"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found; using the process environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
