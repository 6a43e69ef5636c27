package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys. Each can be set by flag, by a JPTEXT_ environment
// variable (JPTEXT_FORMAT, JPTEXT_LOG_LEVEL), or in the YAML config file.
const (
	keyConfig   = "config"
	keyFormat   = "format"
	keyLogLevel = "log-level"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// app holds the state shared by all commands.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newApp() *app {
	v := viper.New()
	v.SetDefault(keyFormat, formatText)
	v.SetDefault(keyLogLevel, "warn")
	v.SetEnvPrefix("JPTEXT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &app{
		v:      v,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// load reads the config file, if any, and sets up the logger. It runs before
// every command.
func (a *app) load(cmd *cobra.Command) error {
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		a.v.SetConfigName(".jptext")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath("$HOME")
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}

	switch format := a.format(); format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
	}

	a.logger = newLogger(a.v.GetString(keyLogLevel), cmd.ErrOrStderr())
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("config loaded", "file", used)
	}
	return nil
}

func (a *app) format() string {
	return strings.ToLower(a.v.GetString(keyFormat))
}

// newLogger creates a text logger on w. Unknown levels fall back to warn.
func newLogger(level string, w io.Writer) *slog.Logger {
	l := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
