// Command rangefold folds the seed ranges of an almanac through its stage
// maps and reports the lowest final value.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"rangefold/internal/config"
)

const version = "0.1.0"

// CLI defines the command-line interface for rangefold.
type CLI struct {
	// Global flags, applied on top of the config file
	Config    string `name:"config" short:"c" help:"TOML config file" type:"existingfile"`
	LogLevel  string `name:"log-level" help:"Log level (trace, debug, info, warning, error)"`
	LogFormat string `name:"log-format" help:"Log format (text or json)"`
	DomainMax int64  `name:"domain-max" help:"Exclusive upper bound of every value"`
	Parallel  bool   `name:"parallel" help:"Pre-compose the stages concurrently"`
	Workers   int    `name:"workers" help:"Goroutine limit of a parallel run, 0 for GOMAXPROCS"`

	Lowest  LowestCmd  `cmd:"" help:"Print the lowest final value reachable from the seeds"`
	Fold    FoldCmd    `cmd:"" help:"Print the composed map from seeds to final values"`
	Check   CheckCmd   `cmd:"" help:"Validate an almanac file"`
	Convert ConvertCmd `cmd:"" help:"Convert an almanac between the text and YAML formats"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "rangefold: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("rangefold"),
		kong.Description("Compose piecewise-offset range maps and find the lowest reachable value"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}

	log, err := cfg.NewLogger(stderr)
	if err != nil {
		return err
	}

	return ctx.Run(&app{cfg: cfg, log: log, out: stdout})
}

// loadConfig reads the config file, if any, and applies the flags set on
// the command line.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg := config.Default()

	if c.Config != "" {
		var err error

		cfg, err = config.LoadFile(c.Config)
		if err != nil {
			return nil, err
		}
	}

	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}

	if c.LogFormat != "" {
		cfg.LogFormat = c.LogFormat
	}

	if c.DomainMax != 0 {
		cfg.DomainMax = c.DomainMax
	}

	if c.Parallel {
		cfg.Parallel = true
	}

	if c.Workers != 0 {
		cfg.Workers = c.Workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// app is bound to every command's Run method.
type app struct {
	cfg *config.Config
	log *logrus.Logger
	out io.Writer
}
