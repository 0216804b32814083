// Package logging builds the process-wide zap logger: human-readable
// console output in development, JSON in production, with an optional
// daily log file alongside.
package logging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogDir overrides the log file directory. Empty disables file output
// unless ./logs already exists.
const EnvLogDir = "BF_LOG_DIR"

// NewLogger builds the application logger for the given environment.
func NewLogger(isDev bool) (*zap.Logger, error) {
	var consoleEncoder zapcore.Encoder
	level := zap.InfoLevel
	if isDev {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(encCfg)
		level = zap.DebugLevel
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level),
	}

	if dir := resolveDir(); dir != "" {
		if file, err := openDailyFile(dir); err == nil {
			fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
			cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(file), level))
		}
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func resolveDir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvLogDir)); dir != "" {
		return dir
	}
	if info, err := os.Stat("logs"); err == nil && info.IsDir() {
		return "logs"
	}
	return ""
}

func openDailyFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	name := "server_" + time.Now().Format("2006-01-02") + ".log"
	return os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
