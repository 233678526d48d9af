package platform

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions selects where and how verbosely the CLI logs.
type LogOptions struct {
	Verbose bool
	File    string    // when set, logs go to a rotated file instead of Stderr
	Stderr  io.Writer // console destination
}

// NewLogger builds the process logger. The returned closer releases the log file.
func NewLogger(o LogOptions) (*slog.Logger, io.Closer) {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if o.File == "" {
		return slog.New(slog.NewTextHandler(o.Stderr, handlerOpts)), nopCloser{}
	}

	rotator := &lumberjack.Logger{
		Filename:   o.File,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	return slog.New(slog.NewJSONHandler(rotator, handlerOpts)), rotator
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
