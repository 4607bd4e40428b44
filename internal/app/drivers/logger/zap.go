package logger

import (
	"adhd-intake-service/internal/app/config"
	"adhd-intake-service/internal/pkg/constvars"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// NewZapLogger writes JSON to stdout. In production it writes to rotated files
// instead, with errors also copied to stderr and their own file.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	logLevel := parseLevel(driverConfig.Logger.Level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	var core zapcore.Core
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		errorsOnly := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.ErrorLevel && l >= logLevel
		})
		core = zapcore.NewTee(
			zapcore.NewCore(encoder, rotatingWriter(driverConfig, driverConfig.Logger.OutputFileName), logLevel),
			zapcore.NewCore(encoder, rotatingWriter(driverConfig, driverConfig.Logger.OutputErrorFileName), errorsOnly),
			zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), errorsOnly),
		)
	default:
		core = zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), logLevel)
	}

	options := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)}
	if internalConfig.App.Env == constvars.AppEnvDevelopment {
		options = append(options, zap.Development())
	}
	return zap.New(core, options...)
}

func rotatingWriter(driverConfig *config.DriverConfig, fileName string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    driverConfig.Logger.MaxSizeInMegabytes,
		MaxBackups: driverConfig.Logger.MaxBackups,
		MaxAge:     driverConfig.Logger.MaxAgeInDays,
		Compress:   true,
	})
}
