package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"confeval/internal/app"
	"confeval/internal/config"
	"confeval/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage: confeval [-debug] <config-file.json>")

func main() {
	printBuildInfo()

	flags := flag.NewFlagSet("confeval", flag.ContinueOnError)
	flags.SetOutput(io.Discard) // usage reporting goes through the logger
	debug := flags.Bool("debug", false, "Enable debug logging")

	level := zerolog.InfoLevel
	err := flags.Parse(os.Args[1:])
	if err == nil && *debug {
		level = zerolog.DebugLevel
	}

	log := logger.NewLogger("confeval", level)

	if err != nil {
		log.Error().Err(errUsage).Msg("invalid arguments")
		os.Exit(1)
	}

	ctx := log.WithContext(context.Background())
	if err := run(ctx, log, flags.Args()); err != nil {
		log.Error().Err(err).Msg("configuration evaluation failed")
		os.Exit(1)
	}
}

// run executes one evaluation: exactly one positional argument (the config
// file path), load, resolve, evaluate. The first failing step aborts the
// run; no file I/O happens on a usage error.
func run(ctx context.Context, log *logger.Logger, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	path := args[0]
	log.Debug().Str("path", path).Msg("loading configuration document")

	doc, err := config.LoadDocument(path)
	if err != nil {
		return err
	}

	params, err := config.ResolveParams(ctx, doc)
	if err != nil {
		return err
	}

	return app.NewEvaluator(log).Evaluate(ctx, params)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
