// Package logger provides a small factory around Go's slog package with
// functional options for output format, level, destination and static
// attributes, plus helper constructors that keep attribute names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("validator")),
//	)
//	log.Debug("rule failed", logger.Field("email"), logger.Rule("email"))
//
// ParseLevel and ParseFormat turn configuration strings into option values.
// Discard returns a logger that drops everything, which libraries use as
// their default so they stay silent unless the caller opts in.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally:
//
//	log.Info("loaded", logger.Error(err))
package logger
