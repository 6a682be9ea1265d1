package chart

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// ErrConfiguration is matched by every ConfigError.
var ErrConfiguration = errors.New("chart: invalid configuration")

// ConfigError reports an option that failed its type, shape or range check.
type ConfigError struct {
	Key    string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("chart: option %q (%v): %s", e.Key, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrConfiguration) true for every ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(slog.Default())
}

// SetLogger replaces the logger used to report soft problems like clamped
// option values.
func SetLogger(l *slog.Logger) {
	logger.Store(l.With(slog.String("module", "chart")))
}

// Logger returns the logger set by SetLogger, for variants reporting
// failures of their own controls.
func Logger() *slog.Logger { return logger.Load() }

func log() *slog.Logger { return logger.Load() }
