// Package config reads binary defaults from the environment. A .env file
// in the working directory is loaded first when present.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/maze-api/internal/errors"
)

// Config holds the values every command starts from. Flags override them.
type Config struct {
	GRPCPort int // GRPC_PORT

	RedisAddr     string // REDIS_ADDR, empty selects the in-memory store
	RedisPassword string // REDIS_PASSWORD
	RedisDB       int    // REDIS_DB

	MazeTTL           time.Duration // MAZE_TTL
	MazeWidth         int           // MAZE_WIDTH
	MazeHeight        int           // MAZE_HEIGHT
	MazeCorridorWidth int           // MAZE_CORRIDOR_WIDTH
	LogLevel          slog.Level    // MAZE_LOG_LEVEL
}

// Defaults
const (
	DefaultGRPCPort          = 50051
	DefaultMazeTTL           = time.Hour
	DefaultMazeWidth         = 40
	DefaultMazeHeight        = 20
	DefaultMazeCorridorWidth = 2
)

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Load reads .env when present and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, applying defaults for unset keys
func FromLookup(lookup LookupFunc) (*Config, error) {
	r := reader{lookup: lookup, vb: errors.NewConfigurationBuilder()}

	cfg := &Config{
		GRPCPort:          r.getInt("GRPC_PORT", DefaultGRPCPort),
		RedisAddr:         r.getString("REDIS_ADDR", ""),
		RedisPassword:     r.getString("REDIS_PASSWORD", ""),
		RedisDB:           r.getInt("REDIS_DB", 0),
		MazeTTL:           r.getDuration("MAZE_TTL", DefaultMazeTTL),
		MazeWidth:         r.getInt("MAZE_WIDTH", DefaultMazeWidth),
		MazeHeight:        r.getInt("MAZE_HEIGHT", DefaultMazeHeight),
		MazeCorridorWidth: r.getInt("MAZE_CORRIDOR_WIDTH", DefaultMazeCorridorWidth),
		LogLevel:          r.getLevel("MAZE_LOG_LEVEL", slog.LevelInfo),
	}

	if err := r.vb.Build(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type reader struct {
	lookup LookupFunc
	vb     *errors.ValidationBuilder
}

func (r reader) getString(key, def string) string {
	if v, ok := r.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (r reader) getInt(key string, def int) int {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.vb.Fieldf(key, "must be an integer, got %q", v)
		return def
	}
	return n
}

func (r reader) getDuration(key string, def time.Duration) time.Duration {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.vb.Fieldf(key, "must be a duration, got %q", v)
		return def
	}
	return d
}

func (r reader) getLevel(key string, def slog.Level) slog.Level {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		r.vb.Fieldf(key, "must be a log level, got %q", v)
		return def
	}
	return level
}
