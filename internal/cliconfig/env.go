package cliconfig

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvConfig    = "EUID_CONFIG"
	EnvEpoch     = "EUID_EPOCH"
	EnvChecksum  = "EUID_CHECKSUM"
	EnvLogLevel  = "EUID_LOG_LEVEL"
	EnvLogFormat = "EUID_LOG_FORMAT"
)

// LoadEnvConfig applies the EUID_* variables that are set. A malformed
// EUID_CHECKSUM is an error and leaves cfg.Checksum untouched.
func LoadEnvConfig(cfg *CLIConfig) error {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvEpoch); v != "" {
		cfg.Epoch = v
		cfg.Sources["epoch"] = SourceEnv
	}
	if v := os.Getenv(EnvChecksum); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: want true or false: %w", EnvChecksum, v, err)
		}
		cfg.Checksum = b
		cfg.Sources["checksum"] = SourceEnv
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
	return nil
}
