// Package debug owns the process-wide file logger. The TUI holds the
// terminal, so log output goes to debug.log in the state directory.
package debug

import (
	"fmt"
	"os"

	"shipfive/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFileName = "debug.log"

// DebugLogger wraps a zap logger and the file it writes to.
type DebugLogger struct {
	logger  *zap.Logger
	logFile *os.File
}

// NewDebugLogger opens debug.log in the state directory and tags every
// entry with a per-process session id. If the file cannot be opened the
// logger discards output.
func NewDebugLogger(verbose bool) *DebugLogger {
	if err := config.EnsureShipDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to create state directory: %v\n", err)
		return &DebugLogger{logger: zap.NewNop()}
	}

	logPath, err := config.PathInShipDir(logFileName)
	if err != nil {
		return &DebugLogger{logger: zap.NewNop()}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to open %s: %v\n", logPath, err)
		return &DebugLogger{logger: zap.NewNop()}
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	return &DebugLogger{
		logger:  newFileLogger(logFile, level),
		logFile: logFile,
	}
}

func newFileLogger(w zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), w, level)
	return zap.New(core, zap.AddCaller()).With(zap.String("session", uuid.NewString()))
}

// Logger returns the underlying zap logger.
func (d *DebugLogger) Logger() *zap.Logger {
	return d.logger
}

// Close flushes and closes the log file
func (d *DebugLogger) Close() {
	_ = d.logger.Sync()

	if d.logFile != nil {
		if err := d.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to close debug log file: %v\n", err)
		}
	}
}
