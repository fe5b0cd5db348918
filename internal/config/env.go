// Package config loads process settings from the environment and generation
// profiles from YAML or TOML files.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/dreamshade/recruit-api/internal/errors"
)

// Recruit stores
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Server holds the settings of the recruit server process
type Server struct {
	GRPCPort   int    `env:"RECRUIT_GRPC_PORT" envDefault:"50051"`
	Store      string `env:"RECRUIT_STORE" envDefault:"redis"`
	RedisAddr  string `env:"RECRUIT_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath string `env:"RECRUIT_SQLITE_PATH" envDefault:"recruits.db"`
	// Profiles is the path of the profile catalog; empty uses the built-in one
	Profiles  string `env:"RECRUIT_PROFILES"`
	LogLevel  string `env:"RECRUIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"RECRUIT_LOG_FORMAT" envDefault:"text"`
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer reads the server settings from the environment
func LoadServer() (*Server, error) {
	cfg := &Server{}
	if err := ParseEnv(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load server config")
	}
	return cfg, nil
}

// Validate checks the server settings
func (s *Server) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", s.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("store", s.Store, []string{StoreRedis, StoreSQLite}, vb)
	switch s.Store {
	case StoreRedis:
		errors.ValidateRequired("redis_addr", s.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("sqlite_path", s.SQLitePath, vb)
	}
	errors.ValidateEnum("log_format", s.LogFormat, []string{"text", "json"}, vb)
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		vb.Field("log_level", err.Error())
	}

	return vb.Build()
}

// SlogLevel returns the configured level, or info when it does not parse
func (s *Server) SlogLevel() slog.Level {
	level, err := ParseLogLevel(s.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel accepts debug, info, warn or error in any case
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
