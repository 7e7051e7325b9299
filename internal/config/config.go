// Package config loads scheduler-sim's JSON configuration file for a
// single binary.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/markphelps/optional"
)

// Config is the on-disk configuration for scheduler-sim. Quantum is an
// optional.Int: RR is the only algorithm that consults it, so "unset" must
// be distinguishable from "zero", which a plain int cannot express.
type Config struct {
	DefaultAlgorithm string       `json:"default_algorithm"`
	Quantum          optional.Int `json:"quantum"`
	MaxLogs          int          `json:"max_logs"`
	LogLevel         string       `json:"log_level"`
	ListenAddr       string       `json:"listen_addr"`
	SQLitePath       string       `json:"sqlite_path"`
	S3Bucket         string       `json:"s3_bucket"`
}

// Default returns the configuration scheduler-sim falls back to when no
// config file is supplied.
func Default() *Config {
	return &Config{
		DefaultAlgorithm: "FCFS",
		Quantum:          optional.NewInt(2),
		MaxLogs:          4096,
		LogLevel:         "info",
		ListenAddr:       ":8080",
	}
}

// Load reads a JSON config file at filePath over Default() and returns the
// resulting Config. When filePath is non-empty it also loads a .env file
// from the working directory into the process environment; no Config
// field is read from the environment. An empty or nonexistent filePath returns
// Default() unchanged; a present-but-malformed file is an error, never a
// partially-applied config.
func Load(filePath string) (*Config, error) {
	cfg := Default()
	if filePath == "" {
		return cfg, nil
	}

	_ = godotenv.Load(".env")

	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("opening config %q: %w", filePath, err)
	}
	defer f.Close()

	decoded := *cfg
	if err := json.NewDecoder(f).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding config %q: %w", filePath, err)
	}
	return &decoded, nil
}

// QuantumOrDefault returns the configured quantum (Default sets 2), or def
// if c is nil or its Quantum holds no value.
func (c *Config) QuantumOrDefault(def int) int {
	if c == nil {
		return def
	}
	return c.Quantum.OrElse(def)
}
