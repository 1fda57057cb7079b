// Package logging provides structured diagnostic logging for the simulator.
//
// It wraps log/slog so every component logs with the same default fields
// (service, version) and level filtering. Diagnostic logs are separate from
// the plain-text command log kept by package history.
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # text, json
//	  output: "stderr"   # stderr, stdout
//
// # Usage
//
//	logger := logging.New(cfg.Logging, version)
//	logger.Info("device added", "name", "Living Room Light")
//
// Never log the MQTT password or InfluxDB token.
package logging
