package main

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Env is a structure that holds all the environment variables that are used in the app.
type Env struct {
	PostgresDSN       string `mapstructure:"POSTGRES_DSN" validate:"required"`
	SentryDSN         string `mapstructure:"SENTRY_DSN"`
	TelegramChannelID string `mapstructure:"TELEGRAM_CHANNEL_ID"`
	TelegramBotToken  string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	CrawlerSections   string `mapstructure:"CRAWLER_SECTIONS"` // comma-separated fixed section list; empty means discover per pass
}

// loadEnv reads the environment into Env and validates it.
func loadEnv() (*Env, error) {
	viper.AutomaticEnv()
	for _, key := range []string{
		"POSTGRES_DSN",
		"SENTRY_DSN",
		"TELEGRAM_CHANNEL_ID",
		"TELEGRAM_BOT_TOKEN",
		"CRAWLER_SECTIONS",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var env Env
	if err := viper.Unmarshal(&env); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(&env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Config holds the Env plus the crawl cadence defaults.
type Config struct {
	env          *Env
	sections     []string      // fixed section list; empty leaves discovery to the crawler
	sectionDelay time.Duration // pause between section listings
	cycleDelay   time.Duration // pause between full crawl passes
	concurrency  int           // parallel article fetches per section
}

// NewConfig creates a Config with the given Env and default values from DefaultConfig.
func NewConfig(env *Env) *Config {
	c := DefaultConfig()
	c.env = env

	if env.CrawlerSections != "" {
		for _, s := range strings.Split(env.CrawlerSections, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.sections = append(c.sections, s)
			}
		}
	}
	return c
}

// DefaultConfig creates a new Config object with default values.
func DefaultConfig() *Config {
	return &Config{
		env:          &Env{},
		sectionDelay: 30 * time.Second,
		cycleDelay:   120 * time.Second,
		concurrency:  5,
	}
}
