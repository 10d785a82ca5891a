package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig configures the CLI logger.
type FileConfig struct {
	// Path of the log file; parent directories are created.
	Path  string
	Debug bool
	// Stderr receives a copy of every record in debug mode. Defaults to os.Stderr.
	Stderr io.Writer
}

// NewFileLogger builds a charmbracelet/log logger writing to a rotating file.
// In debug mode records are mirrored to stderr and the level drops to debug;
// otherwise only warnings and errors are written. The returned closer
// releases the log file.
func NewFileLogger(cfg FileConfig) (*SlogLogger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, err
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := charmlog.WarnLevel
	var w io.Writer = file
	if cfg.Debug {
		level = charmlog.DebugLevel
		stderr := cfg.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		w = io.MultiWriter(stderr, file)
	}

	h := charmlog.NewWithOptions(w, charmlog.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "wellness",
	})

	return NewSlogLogger(slog.New(h)), file, nil
}
