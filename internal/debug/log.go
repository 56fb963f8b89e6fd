package debug

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Logger is the debug logging surface used by the tag store and the CLI.
// It is satisfied by *zap.SugaredLogger.
//
// Example usage:
//
//	logger := debug.GetLogger()
//	logger.Debugw("tag attached", "type", "*yatabl.Record", "identifier", "Commander")
type Logger interface {
	// Debugf logs a formatted debug message
	Debugf(format string, args ...any)
	// Debugw logs a message with structured key/value pairs
	Debugw(msg string, keysAndValues ...any)
}

// nopLogger does nothing (used when debug mode is disabled).
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Debugw(string, ...any) {}

type holder struct{ Logger }

var (
	// l is read from runtime cleanup goroutines, hence atomic.
	l           atomic.Pointer[holder]
	once        sync.Once
	globalLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
)

func init() {
	l.Store(&holder{nopLogger{}})
}

// GetLogger returns the configured debug logger.
// Always use this function to access the logger instead of storing a reference.
func GetLogger() Logger {
	return l.Load().Logger
}

// SetLogger replaces the debug logger. A nil logger restores the no-op logger.
func SetLogger(s *zap.SugaredLogger) {
	if s == nil {
		l.Store(&holder{nopLogger{}})
		return
	}
	l.Store(&holder{s})
}

// InitLogger builds a zap logger from Active when debug mode is enabled.
// Only the first call has any effect. Call Init first.
func InitLogger() {
	once.Do(func() {
		if !Active.Enabled {
			return
		}
		if Active.Level != "" {
			if err := SetLogLevel(Active.Level); err != nil {
				globalLevel.SetLevel(zap.DebugLevel)
			}
		}
		s, err := buildLogger(Active.Format)
		if err != nil {
			return
		}
		SetLogger(s)
		s.Debug("debug logging enabled")
	})
}

// SetLogLevel changes the level of loggers built by InitLogger.
func SetLogLevel(level string) error {
	return globalLevel.UnmarshalText([]byte(level))
}

func buildLogger(format string) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = globalLevel
	if format == "json" {
		cfg.Encoding = "json"
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
