package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"odyssey-voice/internal/config"
)

// log levels, ordered
const (
	levelDebug = iota
	levelInfo
	levelWarning
	levelError
)

var minLevel = levelInfo

// createLogFilePath generates a log file path with the current date
func createLogFilePath(logDir, prefix string) string {
	currentDate := time.Now().Format("2006-01-02")
	return filepath.Join(logDir, fmt.Sprintf("%s-%s.log", prefix, currentDate))
}

// createRotatingLogger creates a lumberjack rotating logger
func createRotatingLogger(logFilePath string, cfg *config.Config) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    cfg.Logger.Rotation.MaxSize,
		MaxBackups: cfg.Logger.Rotation.MaxBackups,
		MaxAge:     cfg.Logger.Rotation.MaxAge,
		Compress:   cfg.Logger.Rotation.Compress,
	}
}

// Setup configures logging to output to both stdout and a rotating log file
func Setup(cfg *config.Config) error {
	logDir := cfg.Logger.Directory

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFilePath := createLogFilePath(logDir, "odyssey-voice")
	rotatingLogger := createRotatingLogger(logFilePath, cfg)
	multiWriter := io.MultiWriter(os.Stdout, rotatingLogger)

	log.SetOutput(multiWriter)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	switch cfg.Logger.Level {
	case "DEBUG":
		minLevel = levelDebug
	case "INFO":
		minLevel = levelInfo
	case "WARNING":
		minLevel = levelWarning
	case "ERROR":
		minLevel = levelError
	}

	log.Printf("Logging initialized: writing to %s", logFilePath)
	return nil
}

func Debugf(format string, args ...interface{}) {
	if minLevel <= levelDebug {
		log.Output(2, fmt.Sprintf("[DEBUG] "+format, args...))
	}
}

func Infof(format string, args ...interface{}) {
	if minLevel <= levelInfo {
		log.Output(2, fmt.Sprintf("[INFO] "+format, args...))
	}
}

func Warningf(format string, args ...interface{}) {
	if minLevel <= levelWarning {
		log.Output(2, fmt.Sprintf("[WARNING] "+format, args...))
	}
}

func Errorf(format string, args ...interface{}) {
	log.Output(2, fmt.Sprintf("[ERROR] "+format, args...))
}
