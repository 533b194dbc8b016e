package cliconfig

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/euid/pkg/logging"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// isolate points every config lookup at empty temp directories.
func isolate(t *testing.T) (cwd, global string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("AppData", home)
	for _, key := range []string{EnvConfig, EnvEpoch, EnvChecksum, EnvLogLevel, EnvLogFormat} {
		t.Setenv(key, "")
	}
	cwd = t.TempDir()
	t.Chdir(cwd)

	dir, err := os.UserConfigDir()
	require.NoError(t, err)
	global = filepath.Join(dir, GlobalConfigDir)
	require.NoError(t, os.MkdirAll(global, 0o700))
	return cwd, global
}

func TestParseEpoch(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "empty", in: "", want: time.UnixMilli(0)},
		{name: "unix millis", in: "1700000000000", want: time.UnixMilli(1700000000000)},
		{name: "negative millis", in: "-1000", want: time.UnixMilli(-1000)},
		{name: "rfc3339", in: "2020-01-01T00:00:00Z", want: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 offset", in: "2020-01-01T02:00:00+02:00", want: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "padded", in: "  42 ", want: time.UnixMilli(42)},
		{name: "garbage", in: "yesterday", wantErr: true},
		{name: "date only", in: "2020-01-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEpoch(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "epoch")
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestCLIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  CLIConfig
		wantErr string
	}{
		{name: "defaults", config: *NewDefault()},
		{name: "zero value", config: CLIConfig{}},
		{name: "custom", config: CLIConfig{Epoch: "2024-06-01T00:00:00Z", LogLevel: "DEBUG", LogFormat: "json"}},
		{name: "bad epoch", config: CLIConfig{Epoch: "soon"}, wantErr: `epoch "soon"`},
		{name: "bad level", config: CLIConfig{LogLevel: "loud"}, wantErr: `unknown log level "loud"`},
		{name: "bad format", config: CLIConfig{LogFormat: "xml"}, wantErr: `unknown log format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCLIConfig_Logging(t *testing.T) {
	cfg := CLIConfig{LogLevel: "error", LogFormat: "JSON"}
	lc, err := cfg.Logging()
	require.NoError(t, err)
	assert.Equal(t, logging.LevelError, lc.Level)
	assert.Equal(t, logging.FormatJSON, lc.Format)
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	assert.Empty(t, cfg.Epoch)
	assert.True(t, cfg.Checksum)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	for _, key := range []string{"epoch", "checksum", "logLevel", "logFormat"} {
		assert.Equal(t, SourceDefault, cfg.Sources[key], key)
	}
}

func TestMergeConfig_BasicFields(t *testing.T) {
	target := NewDefault()
	MergeConfig(target, &CLIConfig{Epoch: "1000", LogLevel: "debug"}, SourceLocal)

	assert.Equal(t, "1000", target.Epoch)
	assert.Equal(t, "debug", target.LogLevel)
	assert.Equal(t, DefaultLogFormat, target.LogFormat)
	assert.True(t, target.Checksum)

	assert.Equal(t, SourceLocal, target.Sources["epoch"])
	assert.Equal(t, SourceLocal, target.Sources["logLevel"])
	assert.Equal(t, SourceDefault, target.Sources["logFormat"])
	assert.Equal(t, SourceDefault, target.Sources["checksum"])
}

func TestMergeConfig_ChecksumFalseFromFile(t *testing.T) {
	target := NewDefault()
	source := &CLIConfig{Checksum: false, SetFields: map[string]bool{"checksum": true}}
	MergeConfig(target, source, SourceGlobal)

	assert.False(t, target.Checksum)
	assert.Equal(t, SourceGlobal, target.Sources["checksum"])
}

func TestMergeConfig_ChecksumAbsentFromFile(t *testing.T) {
	target := NewDefault()
	MergeConfig(target, &CLIConfig{SetFields: map[string]bool{}}, SourceGlobal)

	assert.True(t, target.Checksum)
	assert.Equal(t, SourceDefault, target.Sources["checksum"])
}

func TestMergeConfig_Nil(t *testing.T) {
	target := NewDefault()
	MergeConfig(target, nil, SourceLocal)
	assert.Equal(t, NewDefault(), target)
}

func TestLoadEnvConfig(t *testing.T) {
	isolate(t)
	t.Setenv(EnvEpoch, "2021-01-01T00:00:00Z")
	t.Setenv(EnvChecksum, "false")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg := NewDefault()
	require.NoError(t, LoadEnvConfig(cfg))

	assert.Equal(t, "2021-01-01T00:00:00Z", cfg.Epoch)
	assert.False(t, cfg.Checksum)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	for _, key := range []string{"epoch", "checksum", "logLevel", "logFormat"} {
		assert.Equal(t, SourceEnv, cfg.Sources[key], key)
	}
}

func TestLoadEnvConfig_MalformedChecksum(t *testing.T) {
	isolate(t)
	t.Setenv(EnvChecksum, "maybe")

	cfg := NewDefault()
	err := LoadEnvConfig(cfg)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	assert.ErrorContains(t, err, `EUID_CHECKSUM="maybe": want true or false`)

	assert.True(t, cfg.Checksum)
	assert.Equal(t, SourceDefault, cfg.Sources["checksum"])
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.yaml", "epoch: 1600000000000\nchecksum: false\nlogLevel: info\n")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "1600000000000", cfg.Epoch)
	assert.False(t, cfg.Checksum)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFormat)
	assert.Equal(t, map[string]bool{"epoch": true, "checksum": true, "logLevel": true}, cfg.SetFields)
	assert.NotNil(t, cfg.Sources)
}

func TestLoadConfigFile_Empty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.SetFields)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
		wantMsg  string
	}{
		{name: "unknown key", content: "epoch: 1\nport: 80\n", wantLine: 2, wantMsg: "field port not found"},
		{name: "wrong type", content: "checksum: sometimes\n", wantLine: 1, wantMsg: "cannot unmarshal"},
		{name: "syntax", content: "epoch: 1\n  logLevel: [\n", wantLine: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "bad.yaml", tt.content)

			_, err := LoadConfigFile(path)
			require.Error(t, err)

			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, path, ce.Path)
			if tt.wantLine < 0 {
				assert.Positive(t, ce.Line)
			} else {
				assert.Equal(t, tt.wantLine, ce.Line)
			}
			assert.Contains(t, ce.Message, tt.wantMsg)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigError_Error(t *testing.T) {
	assert.Equal(t, "a.yaml (line 3): boom", (&ConfigError{Path: "a.yaml", Line: 3, Message: "boom"}).Error())
	assert.Equal(t, "a.yaml: boom", (&ConfigError{Path: "a.yaml", Message: "boom"}).Error())
}

func TestFindConfigs(t *testing.T) {
	cwd, global := isolate(t)

	path, err := FindLocalConfig()
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = FindGlobalConfig()
	require.NoError(t, err)
	assert.Empty(t, path)

	local := writeFile(t, cwd, ".euid.yml", "")
	globalFile := writeFile(t, global, "config.yaml", "")

	path, err = FindLocalConfig()
	require.NoError(t, err)
	assert.Equal(t, local, path)

	path, err = FindGlobalConfig()
	require.NoError(t, err)
	assert.Equal(t, globalFile, path)
}

func TestLoadAll_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadAll("")
	require.NoError(t, err)
	assert.Equal(t, NewDefault(), cfg)
}

func TestLoadAll_Precedence(t *testing.T) {
	cwd, global := isolate(t)

	writeFile(t, global, "config.yaml", "epoch: 1\nlogLevel: error\nlogFormat: json\nchecksum: false\n")
	writeFile(t, cwd, ".euid.yaml", "epoch: 2\nlogLevel: info\n")
	explicit := writeFile(t, t.TempDir(), "explicit.yaml", "epoch: 3\n")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadAll(explicit)
	require.NoError(t, err)

	assert.Equal(t, "3", cfg.Epoch)
	assert.Equal(t, SourceFile, cfg.Sources["epoch"])
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, SourceEnv, cfg.Sources["logLevel"])
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, SourceGlobal, cfg.Sources["logFormat"])
	assert.False(t, cfg.Checksum)
	assert.Equal(t, SourceGlobal, cfg.Sources["checksum"])
}

func TestLoadAll_EnvConfigPath(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "env.yaml", "logFormat: json\n")
	t.Setenv(EnvConfig, path)

	cfg, err := LoadAll("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, SourceFile, cfg.Sources["logFormat"])
}

func TestLoadAll_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)
		_, err := LoadAll(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed checksum env", func(t *testing.T) {
		isolate(t)
		t.Setenv(EnvChecksum, "nope")

		cfg, err := LoadAll("")
		require.ErrorIs(t, err, strconv.ErrSyntax)
		assert.Nil(t, cfg)
	})

	t.Run("malformed local file", func(t *testing.T) {
		cwd, _ := isolate(t)
		writeFile(t, cwd, ".euid.yaml", "bogus: true\n")

		_, err := LoadAll("")
		var ce *ConfigError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 1, ce.Line)
	})
}
