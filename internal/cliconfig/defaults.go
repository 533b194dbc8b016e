package cliconfig

// Defaults.
const (
	DefaultChecksum  = true
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// NewDefault creates a CLIConfig holding the default values.
func NewDefault() *CLIConfig {
	return &CLIConfig{
		Checksum:  DefaultChecksum,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources: map[string]string{
			"epoch":     SourceDefault,
			"checksum":  SourceDefault,
			"logLevel":  SourceDefault,
			"logFormat": SourceDefault,
		},
	}
}
