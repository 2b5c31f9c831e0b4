// Package logging provides structured logging for aircon-core.
//
// It is a thin wrapper over log/slog configured from config.LoggingConfig:
// JSON or text output, level filtering, and default service/version
// attributes on every record. Components derive scoped loggers with With:
//
//	log := logging.New(cfg.Logging, version)
//	engineLog := log.With("component", "engine")
package logging
