package logger

import (
	"fmt"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelLog
	LevelInfo
	LevelWarn
	LevelError
)

// Levels lists every level in declaration order.
var Levels = []Level{LevelDebug, LevelLog, LevelInfo, LevelWarn, LevelError}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelLog:
		return "log"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Rank is the level's severity. Debug and log share the lowest rank.
func (l Level) Rank() int {
	switch l {
	case LevelDebug, LevelLog:
		return 0
	case LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	default:
		return -1
	}
}

func (l Level) valid() bool {
	return l >= LevelDebug && l <= LevelError
}

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "log":
		return LevelLog, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown level %q", s)
	}
}
