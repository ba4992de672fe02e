package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir      = "logs"
	logFileName = "gaze.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// setupLogging returns a file-backed logger when debug is set, a no-op logger otherwise
// The terminal owns stdout and stderr, so logs never go there
func setupLogging(debug bool) (*zap.Logger, *os.File) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return zap.NewNop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("gaze-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zap.NewNop(), nil
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), zap.DebugLevel)
	return zap.New(core, zap.AddCaller()), f
}
