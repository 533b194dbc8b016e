package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/getmockd/euid/pkg/logging"
)

// CLIConfig is the complete configuration for the euid command.
type CLIConfig struct {
	// Epoch is the zero point of generated timestamps: an RFC 3339 time or
	// integer Unix milliseconds. Empty means the Unix epoch.
	Epoch string `yaml:"epoch" json:"epoch"`

	// Checksum controls whether generated IDs carry a check symbol.
	Checksum bool `yaml:"checksum" json:"checksum"`

	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Sources tracks where each value came from.
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records the keys present in a loaded file, so an explicit
	// `checksum: false` can be told apart from an absent key.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// Config sources.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// ParseEpoch parses an epoch setting. It accepts integer Unix milliseconds
// or an RFC 3339 timestamp; the empty string is the Unix epoch.
func ParseEpoch(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.UnixMilli(0).UTC(), nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("epoch %q: want RFC 3339 time or Unix milliseconds", s)
	}
	return t.UTC(), nil
}

// EpochTime returns the parsed epoch.
func (c *CLIConfig) EpochTime() (time.Time, error) {
	return ParseEpoch(c.Epoch)
}

// Validate checks every field that has a restricted syntax.
func (c *CLIConfig) Validate() error {
	_, err := c.EpochTime()
	if err != nil {
		return err
	}
	_, err = c.Logging()
	return err
}

// Logging returns the logging configuration described by c.
func (c *CLIConfig) Logging() (logging.Config, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.Config{}, err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return logging.Config{}, err
	}
	return logging.Config{Level: level, Format: format}, nil
}
