// Package log provides the process-wide structured logger used across the
// mesh compiler. It mirrors the teacher engine's logger package: a single
// package-level *zap.Logger behind an Init, so every component logs with
// the same encoder and level without threading a logger through every call.
package log

import (
	"sync"

	"go.uber.org/zap"
)

// Log is the shared logger. It is safe for concurrent use, as all of
// zap.Logger's methods are. Call Init before using it from a fresh process;
// a no-op logger is installed by default so tests and library callers that
// forget to call Init do not panic.
var Log *zap.Logger = zap.NewNop()

var once sync.Once

// Init installs a production logger. Safe to call multiple times; only the
// first call takes effect.
func Init() {
	once.Do(func() {
		logger, err := zap.NewProduction()
		if err != nil {
			Log = zap.NewNop()
			return
		}
		Log = logger
	})
}

// InitDevelopment installs a human-readable, more verbose logger. Intended
// for CLI and test use where production JSON encoding is noise.
func InitDevelopment() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		Log = zap.NewNop()
		return
	}
	Log = logger
}

// Sync flushes any buffered log entries. Callers should defer this from
// main after Init.
func Sync() {
	_ = Log.Sync()
}
