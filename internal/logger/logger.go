// Package logger holds the process-wide structured logger for the
// spendbook API, backed by Zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger for the given environment: a JSON
// encoder in "production", a human-readable console encoder everywhere
// else. Subsequent calls are no-ops.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		if env == "production" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}
		if err != nil {
			base = zap.NewNop()
		}

		sugar = base.Named("spendbook").Sugar()
	})
}

// Get returns the global sugared logger, initializing a development
// logger if Init was never called.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes buffered entries. Call before the process exits.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
