// Package config loads the application settings from the environment.
package config

import (
	"io"
	"os"
	"path/filepath"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/multiorder/internal/render"
)

const (
	ElementInt     = "int"
	ElementFloat   = "float"
	ElementString  = "string"
	ElementNatural = "natural"
)

type Config struct {
	LogLevel string `env:"MULTIORDER_LOG_LEVEL" default:"info" enum:"debug;info;warn;error;"`
	// ElementType is the element type of containers built from user input.
	ElementType string `env:"MULTIORDER_ELEMENT_TYPE" default:"int" enum:"int;float;string;natural;"`
	Format      string `env:"MULTIORDER_FORMAT" default:"text" enum:"text;json;"`
	// HistoryFile is where the repl keeps its history.
	// When empty, a file in the temp directory is used.
	HistoryFile string `env:"MULTIORDER_HISTORY_FILE"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) OutputFormat() (render.Format, error) {
	return render.ParseFormat(c.Format)
}

func (c Config) HistoryPath() string {
	if c.HistoryFile != "" {
		return c.HistoryFile
	}
	return filepath.Join(os.TempDir(), ".multiorder_history")
}

// Logger makes a JSON logger that writes to out with the configured level.
func (c Config) Logger(out io.Writer) *logging.Logger {
	return &logging.Logger{
		Out:   out,
		Level: logging.Level(c.LogLevel),
	}
}
