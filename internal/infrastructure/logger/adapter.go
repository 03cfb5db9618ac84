// Package logger implements output.LoggerPort on top of zap, writing
// structured JSON to a per-session file under ./log/.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chat-agent/internal/application/port/output"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ output.LoggerPort = (*ZapAdapter)(nil)

type ZapAdapter struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

// New creates a session logger. Each session gets its own log file named
// after its start time.
func New(debug bool) (*ZapAdapter, error) {
	if err := os.MkdirAll("log", 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	filename := fmt.Sprintf("%s_session.log", time.Now().Format("2006-01-02_15-04-05"))
	file, err := os.Create(filepath.Join("log", filename))
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(file),
		level,
	)

	return &ZapAdapter{
		sugar: zap.New(core).Sugar(),
		file:  file,
	}, nil
}

func (l *ZapAdapter) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l *ZapAdapter) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }
func (l *ZapAdapter) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l *ZapAdapter) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }

func (l *ZapAdapter) WithField(key string, value any) output.LoggerPort {
	return &ZapAdapter{
		sugar: l.sugar.With(key, value),
		file:  l.file,
	}
}

func (l *ZapAdapter) Close() error {
	_ = l.sugar.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
