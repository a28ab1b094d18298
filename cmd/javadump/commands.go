package main

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/lujjjh/go-jserial"
	"github.com/lujjjh/go-jserial/render"
)

var cmdInspect = cli.Command{
	Name:      "inspect",
	Usage:     "print every top-level record of a stream",
	ArgsUsage: "[FILE...]",
	Action:    inspect,
}

// dump renders each input as a whole, falling back to other interpretations
// for input that is not a Java stream.
func dump(c *cli.Context) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	inputs, err := readInputs(c.Args(), cfg.MaxInputSize, c.GlobalBool("hex") || c.Bool("hex"))
	if err != nil {
		return err
	}
	r, err := newRenderer(cfg, logger)
	if err != nil {
		return err
	}
	w := c.App.Writer
	for _, in := range inputs {
		res, err := r.Render(in.data)
		if err != nil {
			return errors.Wrap(err, in.name)
		}
		logger.Debug("rendered input", zap.String("input", in.name), zap.Stringer("source", res.Source))
		if len(inputs) > 1 {
			fmt.Fprintf(w, "==> %s <==\n", in.name)
		}
		fmt.Fprintln(w, res.Text)
	}
	return nil
}

// inspect decodes every record of each input in turn.
func inspect(c *cli.Context) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	inputs, err := readInputs(c.Args(), cfg.MaxInputSize, c.GlobalBool("hex"))
	if err != nil {
		return err
	}
	w := c.App.Writer
	for _, in := range inputs {
		dec, err := jserial.NewDecoder(bytes.NewReader(in.data), decoderOptions(cfg, logger)...)
		if err != nil {
			return errors.Wrap(err, in.name)
		}
		contents, err := dec.ReadAll()
		fmt.Fprintf(w, "==> %s (version %d, %d records) <==\n", in.name, dec.Version(), len(contents))
		for i, content := range contents {
			text, rerr := render.Render(content, format)
			if rerr != nil {
				return errors.Wrapf(rerr, "%s: record %d", in.name, i)
			}
			fmt.Fprintf(w, "[%d] %s\n", i, text)
		}
		if err != nil {
			logger.Warn("stream ended with an error", zap.String("input", in.name), zap.Int("records", len(contents)), zap.Error(err))
			return errors.Wrapf(err, "%s: record %d", in.name, len(contents))
		}
	}
	return nil
}
