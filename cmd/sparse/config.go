package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds the options of an operation subcommand.
type Config struct {
	// Function is the registered callback name, e.g. "double". Required.
	Function string

	// This is the JSON-encoded bound context handed to map and foreach
	// callbacks. Empty means no context.
	This string

	// Init is the JSON-encoded initial value of reduce. It is only used when
	// HasInit is set, so that "-init null" differs from no -init at all.
	Init    string
	HasInit bool

	// JSON switches the output from console rendering to JSON.
	JSON bool

	// LogLevel is a zerolog level name. Defaults to "warn".
	LogLevel string

	// LogFormat is "json" (default) or "console".
	LogFormat string
}

// DefaultConfig returns a [Config] populated with defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "json",
	}
}

// bind registers the flags of an operation subcommand on flags.
func (c *Config) bind(flags *flag.FlagSet, withThis, withInit bool) {
	flags.StringVar(&c.Function, "fn", c.Function, "name of the registered callback (see 'funcs')")
	if withThis {
		flags.StringVar(&c.This, "this", c.This, "JSON value bound as the callback context")
	}
	if withInit {
		flags.StringVar(&c.Init, "init", c.Init, "JSON initial value of the fold")
	}
	flags.BoolVar(&c.JSON, "json", c.JSON, "print the result as JSON")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: json or console")
}

// afterParse records which optional flags were explicitly set.
func (c *Config) afterParse(flags *flag.FlagSet) {
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "init" {
			c.HasInit = true
		}
	})
}

// validate checks the values that flag parsing cannot.
func (c *Config) validate() error {
	if c.Function == "" {
		return fmt.Errorf("missing -fn")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid -log-level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("invalid -log-format %q", c.LogFormat)
	}
	return nil
}
