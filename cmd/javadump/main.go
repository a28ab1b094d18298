package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

var Version = "0.1.0"

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "javadump"
	app.Version = Version
	app.Usage = "print Java serialization streams in a readable form"
	app.ArgsUsage = "[FILE...]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Load configuration from `FILE`",
		},
		cli.StringFlag{
			Name:  "format, f",
			Usage: "output format, json|yaml|dump|text",
		},
		cli.StringFlag{
			Name:  "max-size",
			Usage: "maximum input size, eg 16MB",
		},
		cli.BoolFlag{
			Name:  "hex",
			Usage: "input is hex text rather than raw bytes",
		},
		cli.BoolFlag{
			Name:  "no-fallback",
			Usage: "fail on input that is not a Java stream",
		},
		cli.StringFlag{
			Name:  "log-level, l",
			Usage: "log level, debug|info|warn|error",
		},
	}
	app.Commands = []cli.Command{
		cmdInspect,
	}
	app.Action = dump
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "javadump:", err)
		os.Exit(1)
	}
}
