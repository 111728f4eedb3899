// Package config loads the YAML configuration shared by the commands.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Server      Server      `yaml:"server"`
	Preferences Preferences `yaml:"preferences"`
	Render      Render      `yaml:"render"`
	Log         Log         `yaml:"log"`
}

// Server configures the HTTP API listener.
type Server struct {
	Addr string `yaml:"addr"`
	CORS CORS   `yaml:"cors"`
}

// CORS lists the origins allowed to call the API.
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Preferences selects where the view toggle is persisted. An empty path
// keeps it in memory.
type Preferences struct {
	Path           string `yaml:"path"`
	DefaultNewView bool   `yaml:"default_new_view"`
}

// Render configures the HTML renderer.
type Render struct {
	Sanitize bool `yaml:"sanitize"`
	// Templates optionally names a directory holding templates/view.tmpl
	// and templates/page.tmpl to use instead of the embedded ones.
	Templates string `yaml:"templates"`
}

// Log selects the log level and the text or json handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			Addr: ":8080",
			CORS: CORS{AllowedOrigins: []string{"*"}},
		},
		Preferences: Preferences{DefaultNewView: true},
		Render:      Render{Sanitize: true},
		Log:         Log{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every enumerated field and names the offending key.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr: must not be empty")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: must be 'text' or 'json', got %q", c.Log.Format)
	}
	return nil
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("must be 'debug', 'info', 'warn', or 'error', got %q", s)
}

// NewLogger creates a logger writing to w per the log section. It does
// not set the global logger.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(l.Level)
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(l.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
