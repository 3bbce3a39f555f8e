// Package logger builds configured log/slog loggers.
//
// It standardizes output format and default attributes across services so
// every component logs the same way. Production wiring uses JSON output for
// log aggregation, development wiring uses text output at debug level.
//
//	log := logger.New(logger.WithProduction("socialynx-backend"))
//	log.Info("server started", slog.String("addr", ":8080"))
package logger
