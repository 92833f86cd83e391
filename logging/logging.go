// Package logging configures the default slog logger from the environment.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`  // debug, info, warn or error
	Format string `envconfig:"LOG_FORMAT" default:"text"` // text or json
}

// Load reads PREFIX_LOG_LEVEL and PREFIX_LOG_FORMAT.
func Load(prefix string) (Config, error) {
	var conf Config
	if err := envconfig.Process(prefix, &conf); err != nil {
		return Config{}, fmt.Errorf("could not load logging config: %w", err)
	}
	return conf, nil
}

func (c Config) Handler(w io.Writer) (slog.Handler, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.Format) {
	case "", "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	}
	return nil, fmt.Errorf("invalid log format %q", c.Format)
}

// Setup installs a default logger writing to w.
func Setup(prefix string, w io.Writer) error {
	conf, err := Load(prefix)
	if err != nil {
		return err
	}
	handler, err := conf.Handler(w)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
