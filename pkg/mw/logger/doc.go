// Package logger builds a log fan-out on top of a chain.
//
// An Adapter exposes Debug, Log, Info, Warn and Error. Each call runs the
// adapter's chain once with the level and the call's arguments; every
// attached logger is one step. The chain ignores errors, so a logger that
// panics or blocks past its step timeout never reaches the caller.
//
// Any value with a subset of the methods Debug, Log, Info, Warn and Error
// taking ...any can be attached, including *logrus.Logger and *logrus.Entry.
// A log/slog logger is attached through Slog:
//
//	log := logger.MustNew().
//		AttachLogger(logrus.StandardLogger()).
//		AttachLoggerLevel(logger.Slog(slog.Default()), logger.LevelWarn)
//	log.Info("device registered", token)
package logger
