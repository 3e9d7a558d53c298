package logger

import (
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	inner *zap.SugaredLogger
}

func NewLogger(level int) *defaultLogger {
	if level >= SILENCE {
		return &defaultLogger{inner: zap.NewNop().Sugar()}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zapLevel(level),
	)

	return newWithCore(core)
}

// NewFileLogger writes json lines to path, rotated once the file reaches
// maxSize megabytes. Old files are kept for maxAge days, at most maxBackups.
func NewFileLogger(level int, path string, maxSize, maxBackups, maxAge int) *defaultLogger {
	if level >= SILENCE {
		return &defaultLogger{inner: zap.NewNop().Sugar()}
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return newWithCore(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(writer),
		zapLevel(level),
	))
}

func newWithCore(core zapcore.Core) *defaultLogger {
	return &defaultLogger{inner: zap.New(core).Sugar()}
}

// ParseLevel converts the configured level name to a level constant. Unknown
// names fall back to INFO.
func ParseLevel(s string) int {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARNING
	case "error":
		return ERROR
	case "silence", "off":
		return SILENCE
	}

	return INFO
}

func zapLevel(level int) zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case WARNING:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	}

	return zapcore.InfoLevel
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	l.inner.Debugf(msg, a...)
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	l.inner.Infof(msg, a...)
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	l.inner.Warnf(msg, a...)
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	l.inner.Errorf(msg, a...)
}
