package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddress    string
	DebugAddress     string
	RedisUrl         string
	RedisPassword    string
	RabbitUrl        string
	Country          string
	DataDir          string
	SqlitePath       string
	CatalogFile      string
	SimulatedLatency time.Duration
	CacheDuration    time.Duration
	Profiling        bool
}

func Defaults() Config {
	return Config{
		ListenAddress:    ":8080",
		DebugAddress:     ":8081",
		Country:          "se",
		DataDir:          "data",
		SimulatedLatency: 500 * time.Millisecond,
		CacheDuration:    5 * time.Minute,
		Profiling:        false,
	}
}

// Load reads the optional env file and then the process environment.
// A missing env file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv(Defaults())
}

func FromEnv(cfg Config) (Config, error) {
	str := func(curr *string, env string) {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*curr = v
		}
	}
	str(&cfg.ListenAddress, "LISTEN_ADDRESS")
	str(&cfg.DebugAddress, "DEBUG_ADDRESS")
	str(&cfg.RedisUrl, "REDIS_URL")
	str(&cfg.RedisPassword, "REDIS_PASSWORD")
	str(&cfg.RabbitUrl, "RABBIT_URL")
	str(&cfg.Country, "COUNTRY")
	str(&cfg.DataDir, "DATA_DIR")
	str(&cfg.SqlitePath, "SQLITE_PATH")
	str(&cfg.CatalogFile, "CATALOG_FILE")

	if v := os.Getenv("SIMULATED_LATENCY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return cfg, fmt.Errorf("SIMULATED_LATENCY_MS: invalid value %q", v)
		}
		cfg.SimulatedLatency = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("CACHE_SECONDS"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil || s < 0 {
			return cfg, fmt.Errorf("CACHE_SECONDS: invalid value %q", v)
		}
		cfg.CacheDuration = time.Duration(s) * time.Second
	}
	if v := os.Getenv("PROFILING"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("PROFILING: %w", err)
		}
		cfg.Profiling = b
	}
	return cfg, nil
}
