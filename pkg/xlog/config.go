package xlog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConfig returns the default logging configuration: text output to
// stderr at LevelInfo, no log file.
func NewConfig() Config {
	return Config{
		Level:   slog.LevelInfo,
		Format:  "text",
		Writer:  os.Stderr,
		MaxSize: 30,
	}
}

// Config describes how log records are rendered and where they go.
type Config struct {
	// Level is the minimum record level that is emitted.
	Level slog.Level

	// AddSource annotates records with the file and line they come from.
	AddSource bool

	// Format selects the console output encoding, one of ["text", "json"].
	Format string

	// Writer receives the console output. Defaults to os.Stderr.
	Writer io.Writer

	// Path is an optional log file. When set, records are also written
	// there JSON encoded, and the file is size-rotated.
	Path string

	// MaxSize is the maximum size of the log file in MB before it is
	// rotated.
	MaxSize int

	// MaxAge is the maximum number of days a rotated file is retained.
	MaxAge int

	// MaxBackups is the maximum number of rotated files retained.
	MaxBackups int

	// Compress enables compression of rotated files.
	Compress bool
}

// New creates a Logger from the config.
func New(c Config) *slog.Logger {
	return slog.New(c.BuildHandler())
}

// BuildHandler creates a slog.Handler from the config.
func (c Config) BuildHandler() slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       c.Level,
		AddSource:   c.AddSource,
		ReplaceAttr: trimSourcePath,
	}
	writer := c.Writer
	if writer == nil {
		writer = os.Stderr
	}

	var console slog.Handler
	if c.Format == "json" {
		console = slog.NewJSONHandler(writer, opts)
	} else {
		console = slog.NewTextHandler(writer, opts)
	}
	if c.Path == "" {
		return console
	}

	file := slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}, opts)
	return MultiHandler(console, file)
}

// trimSourcePath shortens source annotations to the file basename.
func trimSourcePath(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.SourceKey {
		if source, ok := attr.Value.Any().(*slog.Source); ok {
			source.File = filepath.Base(source.File)
		}
	}
	return attr
}
