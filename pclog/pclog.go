package pclog

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
)

// Level is pclog's severity ladder, ordered from most severe/least
// verbose to least severe/most verbose, matching spec.md §7.
type Level int

const (
	LevelCriticalError Level = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelExtra
	LevelMemory
	LevelAll
)

var levelNames = [...]string{
	"CRITICAL_ERROR", "ERROR", "WARNING", "INFO", "EXTRA", "MEMORY", "ALL",
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// goLevel maps a pclog severity onto the nearest go-logging level; Level
// has seven rungs and go-logging has six, so Memory and All both land on
// DEBUG, the most permissive go-logging level.
func (l Level) goLevel() logging.Level {
	switch l {
	case LevelCriticalError:
		return logging.CRITICAL
	case LevelError:
		return logging.ERROR
	case LevelWarning:
		return logging.WARNING
	case LevelInfo:
		return logging.NOTICE
	case LevelExtra:
		return logging.INFO
	default:
		return logging.DEBUG
	}
}

var defaultFormat = logging.MustStringFormatter(
	`%{time:2006-01-02 15:04:05.000} [%{level:.8s}] %{module} - %{message}`,
)

// Handler is pclog's façade over a go-logging logger for one named
// component. The zero value is not usable; use New.
type Handler struct {
	logger    *logging.Logger
	threshold Level
	exit      func(int)
}

// New returns a Handler for component, gating Info/Extra/Memory/All
// messages by threshold (CriticalError/Error/Warning always log,
// per spec.md §7's propagation policy).
func New(component string, threshold Level) *Handler {
	logger := logging.MustGetLogger(component)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, defaultFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.DEBUG, "")
	logging.SetBackend(leveled)

	return &Handler{logger: logger, threshold: threshold, exit: os.Exit}
}

// CriticalError logs at the CriticalError severity and terminates the
// process: spec.md §7 says the process "cannot continue" and this
// "always terminates."
func (h *Handler) CriticalError(format string, args ...interface{}) {
	h.logger.Critical(fmt.Sprintf(format, args...))
	h.exit(1)
}

// Error reports that a single run cannot continue; the driver is
// expected to skip the run and continue with the next one.
func (h *Handler) Error(format string, args ...interface{}) {
	h.logger.Error(fmt.Sprintf(format, args...))
}

// Warning reports an unexpected but recoverable condition.
func (h *Handler) Warning(format string, args ...interface{}) {
	h.logger.Warning(fmt.Sprintf(format, args...))
}

// Info reports routine progress, gated by threshold.
func (h *Handler) Info(format string, args ...interface{}) {
	if h.threshold < LevelInfo {
		return
	}
	h.logger.Notice(fmt.Sprintf(format, args...))
}

// Extra reports verbose diagnostics, gated by threshold.
func (h *Handler) Extra(format string, args ...interface{}) {
	if h.threshold < LevelExtra {
		return
	}
	h.logger.Info(fmt.Sprintf(format, args...))
}

// Memory reports memory/resource accounting detail, gated by threshold.
func (h *Handler) Memory(format string, args ...interface{}) {
	if h.threshold < LevelMemory {
		return
	}
	h.logger.Debug(fmt.Sprintf(format, args...))
}
