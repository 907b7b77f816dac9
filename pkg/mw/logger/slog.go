package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// SlogLogger exposes a *slog.Logger through the variadic capability methods.
// It has no Log method, so the log level falls back to Debug.
type SlogLogger struct {
	l *slog.Logger
}

func Slog(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(args ...any) { s.l.Debug(message(args)) }
func (s *SlogLogger) Info(args ...any)  { s.l.Info(message(args)) }
func (s *SlogLogger) Warn(args ...any)  { s.l.Warn(message(args)) }
func (s *SlogLogger) Error(args ...any) { s.l.Error(message(args)) }

func message(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
