// chessplus answers rules questions about variant chess positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chessplus-go/internal/catalog"
	"github.com/lgbarn/chessplus-go/internal/config"
	"github.com/lgbarn/chessplus-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessplus-go version %s\n", programVersion)
		os.Exit(0)
	}

	builder := config.NewConfigBuilder().WithEnv(*envFile)
	applyFlags(builder)
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		builder.WithOutput(f)
	}
	cfg, err := builder.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := execute(ctx, cfg); err != nil {
		log.WithError(err).Error("failed")
		os.Exit(1)
	}
}

// execute loads the engine and runs the requested command.
func execute(ctx context.Context, cfg *config.Config) error {
	eng, err := loadEngine(cfg)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	return run(ctx, cfg, eng)
}

// setupLogging installs the cli handler on the package logger.
func setupLogging(cfg *config.Config) {
	level, _ := cfg.Level()
	log.SetHandler(cli.New(cfg.LogFile))
	log.SetLevel(level)
}

// loadEngine builds an engine over the configured catalog.
func loadEngine(cfg *config.Config) (*engine.Engine, error) {
	if cfg.Engine.CatalogPath == "" {
		return engine.New(nil), nil
	}
	cat, err := catalog.LoadFile(cfg.Engine.CatalogPath)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"path":   cfg.Engine.CatalogPath,
		"pieces": cat.Len(),
	}).Debug("catalog loaded")
	return engine.New(cat), nil
}

// run dispatches to the requested command.
func run(ctx context.Context, cfg *config.Config, eng *engine.Engine) error {
	switch {
	case *dumpCatalog:
		return catalog.Encode(cfg.OutputFile, eng.Catalog())
	case *batchFile != "":
		return runBatch(ctx, cfg, eng, *batchFile, os.Stdin)
	case *play:
		return runPlay(cfg, eng, os.Stdin)
	}

	board, side, err := parsePosition(*positionFlag)
	if err != nil {
		return err
	}

	switch {
	case cfg.Engine.PerftDepth > 0:
		return runPerft(cfg, eng, board, side, cfg.Engine.PerftDepth, *divide)
	case *moveFlag != "":
		return runMove(cfg, eng, board, side, *moveFlag)
	case *squareFlag != "":
		return runSquare(cfg, eng, board, side, *squareFlag)
	case *checkFlag:
		return runCheck(cfg, eng, board, side)
	}
	return runAnalyze(cfg, eng, board, side)
}

func usage() {
	fmt.Fprintf(os.Stderr, `chessplus-go version %s

Usage: chessplus [options]

Without a query flag the position is analyzed: side to move, whether its
leader is attacked and every legal move.

Environment (overridden by flags):
  CHESSPLUS_CATALOG, CHESSPLUS_LOG_LEVEL, CHESSPLUS_WORKERS, CHESSPLUS_JSON

Options:
`, programVersion)
	flag.PrintDefaults()
}
