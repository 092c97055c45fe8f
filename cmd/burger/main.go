// Command burger validates burger recipe documents.
//
// Usage:
//
//	burger recipe.json [more.yaml ...]
//
// Each file is decoded as JSON or YAML by extension and every field is
// checked. The exit status is 1 when any recipe is invalid and 2 on usage
// errors.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/fieldkit/pkg/burger"
	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

type Config struct {
	AppName   string `env:"APP_NAME" envDefault:"burger"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`
}

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "burger: %v\n", err)
		os.Exit(exitUsage)
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "burger: %v\n", err)
		os.Exit(exitUsage)
	}

	os.Exit(run(log, os.Args[1:]))
}

func newLogger(cfg Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := []logger.Option{
		logger.WithOutput(os.Stderr),
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithLevel(level),
	}
	if cfg.LogFormat != "" {
		format := logger.Format(cfg.LogFormat)
		if format != logger.FormatJSON && format != logger.FormatText {
			return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

func run(log *slog.Logger, paths []string) int {
	if len(paths) == 0 {
		log.Error("no recipe files given")
		return exitUsage
	}

	status := exitOK
	for _, path := range paths {
		if err := check(log, path); err != nil {
			status = exitInvalid
		}
	}
	return status
}

// check logs every failing field of the recipe at path, not just the first.
func check(log *slog.Logger, path string) error {
	format, err := burger.FormatFromPath(path)
	if err != nil {
		log.Error("unsupported recipe file", logger.File(path), logger.Error(err))
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("cannot read recipe file", logger.File(path), logger.Error(err))
		return err
	}

	values, err := burger.DecodeMap(data, format)
	if err != nil {
		log.Error("malformed recipe", logger.File(path), logger.Error(err))
		return err
	}

	if err := burger.Check(values); err != nil {
		log.Error("invalid recipe", logger.File(path), logger.ValidationErrors(err))
		return err
	}

	recipe, err := burger.FromMap(values)
	if err != nil {
		log.Error("invalid recipe", logger.File(path), logger.ValidationErrors(err))
		return err
	}

	log.Info("valid recipe", logger.File(path), logger.Values(recipe.Map(), burger.Fields()))
	return nil
}
