// Package logging builds the application logger.
//
// The TUI owns stdout and stderr while it runs, so log entries are written
// to a file. Without a file the logger discards everything.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger writing JSON lines to path at the given
// level. An empty path yields a no-op logger. The returned close func
// flushes and closes the file.
func New(path, level string) (*zap.SugaredLogger, func(), error) {
	if path == "" {
		return zap.NewNop().Sugar(), func() {}, nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(file),
		zap.NewAtomicLevelAt(lvl),
	)
	logger := zap.New(core).Named("gyrocompass").Sugar()

	closeFn := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, closeFn, nil
}
