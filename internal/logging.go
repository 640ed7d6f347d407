package internal

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarning:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger builds the process logger: JSON lines on stdout, minimum
// severity from LOG_LEVEL, tagged with the configured app name.
func NewLogger(cfg Config) *zap.Logger {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel.zapLevel())
	zc.OutputPaths = []string{"stdout"}
	zc.ErrorOutputPaths = []string{"stdout"}
	return zap.Must(zc.Build()).With(zap.String("app", cfg.AppName))
}
