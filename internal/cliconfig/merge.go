package cliconfig

// MergeConfig copies the values set in source onto target and records
// sourceType for each. Strings merge when non-empty. Checksum merges when
// the key was present in the loaded file, or when it is true for configs
// built in code.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Epoch != "" {
		target.Epoch = source.Epoch
		target.Sources["epoch"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	if checksumIsSet(source) {
		target.Checksum = source.Checksum
		target.Sources["checksum"] = sourceType
	}
}

func checksumIsSet(cfg *CLIConfig) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields["checksum"]
	}
	return cfg.Checksum
}
