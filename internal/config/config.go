// Package config loads the javadump configuration file.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/c2h5oh/datasize"
	"github.com/naoina/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"github.com/lujjjh/go-jserial/render"
)

// Config holds the settings shared by every javadump command. Keys in the
// TOML file use the Go field names.
type Config struct {
	// Format is one of json, yaml, dump or text.
	Format string
	// MaxInputSize bounds how much of each input is read, eg "64MB".
	MaxInputSize datasize.ByteSize
	// CacheSize is the number of rendered inputs remembered; 0 disables the
	// cache.
	CacheSize int
	LogLevel  string
	// Fallback renders input that is not a Java stream as text, protobuf or
	// escaped bytes instead of failing.
	Fallback bool
	// MaxDepth bounds record nesting; 0 uses the decoder default.
	MaxDepth int
}

// DefaultConfig contains the default settings.
var DefaultConfig = Config{
	Format:       string(render.FormatJSON),
	MaxInputSize: 64 * datasize.MB,
	CacheSize:    128,
	LogLevel:     "info",
	Fallback:     true,
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// Load reads file over the defaults.
func Load(file string) (Config, error) {
	f, err := os.Open(file)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()
	return Parse(bufio.NewReader(f), file)
}

// Parse reads a TOML document over the defaults. name prefixes errors that
// carry a line number.
func Parse(r io.Reader, name string) (Config, error) {
	cfg := DefaultConfig
	err := tomlSettings.NewDecoder(r).Decode(&cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(name + ", " + err.Error())
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.MaxInputSize == 0 {
		return errors.New("MaxInputSize must be positive")
	}
	if c.CacheSize < 0 {
		return errors.Errorf("CacheSize must not be negative, got %d", c.CacheSize)
	}
	if c.MaxDepth < 0 {
		return errors.Errorf("MaxDepth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(err, "invalid LogLevel %q", c.LogLevel)
	}
	return level, nil
}
