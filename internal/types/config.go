package types

import "go.uber.org/zap/zapcore"

type RunMode string

const (
	// RunModeLocal runs the API server and the billing cron locally
	RunModeLocal RunMode = "local"
	// RunModeAPI runs just the API server
	RunModeAPI RunMode = "api"
	// RunModeCron runs just the billing and retry cron jobs
	RunModeCron RunMode = "cron"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) ToZapLevel() zapcore.Level {
	switch l {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
