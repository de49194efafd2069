package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// InitializeLogger initializes the global logger. Production mode is
// selected through the ENV environment variable.
func InitializeLogger() {
	var err error
	var logger *zap.Logger
	if os.Getenv("ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Logger = logger
}

// Close flushes any buffered log entries.
func Close() {
	// Sync can fail on stderr, there is nothing useful to do about it
	_ = Logger.Sync()
}

func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

// Global logging methods to avoid `logger.Logger` repetition

func Info(msg string, args ...zapcore.Field) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...zapcore.Field) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...zapcore.Field) {
	GetLogger().Error(msg, args...)
}

func Fatal(msg string, args ...zapcore.Field) {
	GetLogger().Fatal(msg, args...)
}

func Debug(msg string, args ...zapcore.Field) {
	GetLogger().Debug(msg, args...)
}
