package logger

import (
	"sync"

	"go.uber.org/zap"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process logger writing to stdout. The first call picks
// the level; later calls return the same instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level, stdoutSink())
	})
	return globalLogger
}

// ToFile returns a logger appending to path, for front ends that own the terminal.
func ToFile(level, path string) (*Logger, func() error, error) {
	sink, closeFn, err := fileSink(path)
	if err != nil {
		return nil, nil, err
	}
	return newZapLogger(level, sink), closeFn, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}
