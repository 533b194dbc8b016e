// Package logging builds the log/slog loggers used by the euid library and
// command.
//
// Library code never logs through a global logger. Components accept a
// *slog.Logger (euid.WithLogger) and fall back to Nop, so embedding
// programs decide where, and whether, output goes. The euid command builds
// its logger from configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//	gen := euid.NewGenerator(euid.WithLogger(logger))
package logging
