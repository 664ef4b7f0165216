package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging
const (
	FieldFrequency = "frequency_hz"
	FieldPoints    = "points"
	FieldSweep     = "sweep"
	FieldFile      = "file"
	FieldTemp      = "temperature_k"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// Flag to track if JSON output is enabled
	JSONOutput bool
)

func init() {
	// No-op until Initialize so library code can log unconditionally
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. verbosity 0 logs warnings and above,
// 1 adds info and 2 or more adds debug.
func Initialize(jsonOutput bool, verbosity int) error {
	JSONOutput = jsonOutput
	level := levelFor(verbosity)

	var zapLogger *zap.Logger
	var err error

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		zapLogger, err = config.Build()
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.TimeKey = ""
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderConfig),
				zapcore.AddSync(os.Stderr),
				level,
			),
		)
	}

	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// SetLogger replaces the global logger, e.g. with a zaptest logger.
func SetLogger(l *zap.Logger) {
	Logger = l.Sugar()
}

// ComponentLogger returns a named logger for a specific component.
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

func levelFor(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zap.WarnLevel
	case verbosity == 1:
		return zap.InfoLevel
	default:
		return zap.DebugLevel
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
