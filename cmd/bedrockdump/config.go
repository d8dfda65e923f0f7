package main

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is bedrockdump's settings, loaded from bedrockdump.toml and
// overridable by a handful of BEDROCKDUMP_-prefixed .env values — mirrors
// the teacher's own split between a TOML file for structured settings and
// godotenv for ad hoc local overrides.
type Config struct {
	ProtocolID uint32 `toml:"protocol_id"`
	Verbose    bool   `toml:"verbose"`
	InputPath  string `toml:"input_path"`
}

// DefaultConfig matches the newest protocol generation the codec
// understands, so a dump works out of the box against current captures.
func DefaultConfig() Config {
	return Config{ProtocolID: 554, Verbose: false, InputPath: ""}
}

// LoadConfig reads path (if present) over DefaultConfig, then applies any
// BEDROCKDUMP_PROTOCOL_ID / BEDROCKDUMP_VERBOSE / BEDROCKDUMP_INPUT_PATH
// environment values — from a real env var or from a .env file in the
// current directory, loaded via godotenv if present. A missing config
// file is not an error; a malformed config file is. Any error loading the
// .env file, including a malformed one, is ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	_ = godotenv.Load() // optional; absence is not an error

	if v := os.Getenv("BEDROCKDUMP_PROTOCOL_ID"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return Config{}, err
		}
		cfg.ProtocolID = uint32(id)
	}
	if v := os.Getenv("BEDROCKDUMP_VERBOSE"); v != "" {
		cfg.Verbose = v == "1" || v == "true"
	}
	if v := os.Getenv("BEDROCKDUMP_INPUT_PATH"); v != "" {
		cfg.InputPath = v
	}
	return cfg, nil
}
