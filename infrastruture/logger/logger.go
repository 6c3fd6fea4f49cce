// Package logger provides the component logger used across the application.
package logger

import (
	"fmt"
	"io"

	"github.com/beka-birhanu/advent2024/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes leveled messages tagged with a colored component prefix.
// Implements i.Logger.
type Logger struct {
	z *zap.Logger
}

// New creates a logger for the named component writing to w at or above level.
// An empty color disables coloring of the prefix.
func New(prefix, color string, w io.Writer, level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	encoderCfg.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		if color == "" {
			enc.AppendString("[" + name + "]")
			return
		}
		enc.AppendString(color + "[" + name + "]" + config.ColorReset)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), lvl)
	return &Logger{z: zap.New(core).Named(prefix)}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.z.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.z.Info(msg)
}

// Warning logs a warning.
func (l *Logger) Warning(msg string) {
	l.z.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(msg string) {
	l.z.Error(msg)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}
