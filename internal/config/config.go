package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// Config holds server settings resolved from defaults, environment
// variables and command line flags (flags win).
type Config struct {
	Addr           string
	Env            string
	JWTSecret      string
	SQLitePath     string
	BoltPath       string
	FrontendOrigin string
	LogLevel       string
}

// ErrNoSecret сервер не стартует без секрета подписи токенов
var ErrNoSecret = errors.New("config: JWTSECRET is required")

func defaults() *Config {
	return &Config{
		Addr:           ":8081",
		Env:            "development",
		SQLitePath:     "bugtrack.db",
		BoltPath:       "bugtrack-bans.db",
		FrontendOrigin: "*",
		LogLevel:       "info",
	}
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("PORT"); ok {
		c.Addr = ":" + v
	}
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		c.Addr = v
	}
	if v, ok := os.LookupEnv("ENV"); ok {
		c.Env = v
	}
	if v, ok := os.LookupEnv("JWTSECRET"); ok {
		c.JWTSecret = v
	}
	if v, ok := os.LookupEnv("DATABASE_PATH"); ok {
		c.SQLitePath = v
	}
	if v, ok := os.LookupEnv("BANS_PATH"); ok {
		c.BoltPath = v
	}
	if v, ok := os.LookupEnv("FRONTEND_ORIGIN"); ok {
		c.FrontendOrigin = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
}

func (c *Config) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "a", c.Addr, "address to listen on")
	fs.StringVar(&c.Env, "env", c.Env, "environment name reported by /health")
	fs.StringVar(&c.SQLitePath, "db", c.SQLitePath, "path to sqlite database")
	fs.StringVar(&c.BoltPath, "bans", c.BoltPath, "path to ban registry database")
	fs.StringVar(&c.FrontendOrigin, "origin", c.FrontendOrigin, "allowed CORS origin")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Load resolves configuration: defaults, then environment, then flags.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := defaults()
	cfg.applyEnv()
	cfg.registerFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, ErrNoSecret
	}

	return cfg, nil
}
