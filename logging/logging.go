// logging/logging.go - Process log output and rotation
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
	gormlogger "gorm.io/gorm/logger"
)

// Options controls where the standard logger writes.
type Options struct {
	// File enables a rotating log file next to stderr. Empty means stderr only.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup points the standard logger at stderr, teed into a rotating file
// when opts.File is set. The returned closer flushes and closes the file.
func Setup(opts Options) io.Closer {
	log.SetFlags(log.LstdFlags)
	if opts.File == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}
	}

	w := NewRotatingFile(opts)
	log.SetOutput(io.MultiWriter(os.Stderr, w))
	log.Printf("📝 Logging to %s (max %d MB, %d backups)", opts.File, w.MaxSize, w.MaxBackups)
	return w
}

// NewRotatingFile returns the lumberjack writer for opts.
func NewRotatingFile(opts Options) *lumberjack.Logger {
	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 50
	}
	return &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize, // MB
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}
}

// GormLevel picks the GORM log level for an APP_ENV value.
func GormLevel(appEnv string) gormlogger.LogLevel {
	if appEnv == "production" {
		return gormlogger.Warn
	}
	return gormlogger.Info
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
