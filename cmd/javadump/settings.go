package main

import (
	"github.com/c2h5oh/datasize"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/lujjjh/go-jserial"
	"github.com/lujjjh/go-jserial/internal/config"
	"github.com/lujjjh/go-jserial/render"
)

func isSet(c *cli.Context, name string) bool {
	return c.IsSet(name) || c.GlobalIsSet(name)
}

func stringFlag(c *cli.Context, name string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return c.GlobalString(name)
}

// settings loads the config file, if any, and applies flags over it.
func settings(c *cli.Context) (config.Config, error) {
	cfg := config.DefaultConfig
	if file := stringFlag(c, "config"); file != "" {
		var err error
		if cfg, err = config.Load(file); err != nil {
			return cfg, err
		}
	}
	if isSet(c, "format") {
		cfg.Format = stringFlag(c, "format")
	}
	if isSet(c, "log-level") {
		cfg.LogLevel = stringFlag(c, "log-level")
	}
	if isSet(c, "max-size") {
		var size datasize.ByteSize
		if err := size.UnmarshalText([]byte(stringFlag(c, "max-size"))); err != nil {
			return cfg, errors.Wrap(err, "invalid --max-size")
		}
		cfg.MaxInputSize = size
	}
	if c.Bool("no-fallback") || c.GlobalBool("no-fallback") {
		cfg.Fallback = false
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

func decoderOptions(cfg config.Config, logger *zap.Logger) []jserial.Option {
	opts := []jserial.Option{jserial.WithLogger(logger)}
	if cfg.MaxDepth > 0 {
		opts = append(opts, jserial.WithMaxDepth(cfg.MaxDepth))
	}
	return opts
}

func newRenderer(cfg config.Config, logger *zap.Logger) (*render.Renderer, error) {
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return render.NewRenderer(render.Options{
		Format:   format,
		Fallback: cfg.Fallback,
		Decoder:  decoderOptions(cfg, logger),
		Logger:   logger,
	}, cfg.CacheSize)
}
