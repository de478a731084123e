package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dsh2dsh/actionlog"
)

func New() *Config { return new(Config) }

// Config is the optional file config of the actionlog command. It holds what
// subcommand flags do not cover: the severity threshold, where command lines
// go and the metadata rendered into every annotation.
type Config struct {
	Level    string            `yaml:"level" default:"info" validate:"required,loglevel"`
	Output   string            `yaml:"output" default:"stdout" validate:"required"`
	Metadata map[string]string `yaml:"metadata" validate:"omitempty,dive,keys,required,endkeys"`

	IncludeMetadata string `yaml:"include_metadata"`

	path string
}

func (c *Config) lateInit(path string) error {
	m, err := mergeYAML(path, c.IncludeMetadata, c.Metadata)
	if err != nil {
		return err
	} else if m != nil {
		c.Metadata = m
	}
	return nil
}

// Path returns where this config was loaded from, empty without a file.
func (c *Config) Path() string { return c.path }

// MinLevel returns the configured severity threshold.
func (c *Config) MinLevel() (slog.Level, error) {
	l, err := actionlog.ParseLevel(c.Level)
	if err != nil {
		return 0, fmt.Errorf("config level: %w", err)
	}
	return l, nil
}

// HandlerMetadata returns the configured metadata as handler values.
func (c *Config) HandlerMetadata() actionlog.Metadata {
	if len(c.Metadata) == 0 {
		return nil
	}
	m := make(actionlog.Metadata, len(c.Metadata))
	for k, v := range c.Metadata {
		m[k] = actionlog.StringValue(v)
	}
	return m
}

// OpenOutput returns the stream command lines go to and a close function.
// The names stdout and stderr mean the process streams, anything else is a
// file path opened for append.
func (c *Config) OpenOutput() (io.Writer, func() error, error) {
	switch c.Output {
	case "", "stdout":
		return os.Stdout, nopClose, nil
	case "stderr":
		return os.Stderr, nopClose, nil
	}

	f, err := os.OpenFile(c.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open output %q: %w", c.Output, err)
	}
	return f, f.Close, nil
}

func nopClose() error { return nil }

// Handler builds the handler this config describes, writing to w, with the
// runner environment applied on top of the configured threshold.
func (c *Config) Handler(w io.Writer) (*actionlog.Handler, error) {
	level, err := c.MinLevel()
	if err != nil {
		return nil, err
	}

	opts := []actionlog.Option{
		actionlog.WithWriter(w),
		actionlog.WithLevel(level),
	}
	if m := c.HandlerMetadata(); m != nil {
		opts = append(opts, actionlog.WithMetadata(m))
	}
	opts = append(opts, actionlog.FromEnv())
	return actionlog.New(opts...), nil
}
