// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessplus-go/internal/config"
)

var (
	// Input
	positionFlag = flag.String("position", "", "Position in board notation (default: initial position)")
	batchFile    = flag.String("batch", "", "File with one position per line to analyze (- for stdin)")
	envFile      = flag.String("env", ".env", "Dotenv file with CHESSPLUS_* settings")
	outputPath   = flag.String("o", "", "Write output to this file instead of stdout")

	// Queries
	squareFlag = flag.String("square", "", "List the legal moves of the piece on this square")
	moveFlag   = flag.String("move", "", "Apply a legal move such as e2e4 and print the new position")
	checkFlag  = flag.Bool("check", false, "Report whether the side to move has its leader attacked")
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the legal move tree to depth N")
	divide     = flag.Bool("divide", false, "With -perft, list the node count below each move")
	play       = flag.Bool("play", false, "Read squares from stdin and play them like board presses")

	// Engine
	catalogFile  = flag.String("catalog", "", "YAML piece catalog (default: standard pieces)")
	dumpCatalog  = flag.Bool("dumpcatalog", false, "Print the active piece catalog as YAML")
	workers      = flag.Int("workers", 0, "Number of workers for -batch (default 1)")
	skipDups     = flag.Bool("D", false, "Skip duplicate positions in -batch")
	maxPositions = flag.Int("duplicate-capacity", 0, "Maximum remembered positions for -D (0 = unlimited)")

	// Output
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	showBoard  = flag.Bool("board", false, "Print a board diagram with text output")
	lineLength = flag.Int("w", 80, "Maximum line length")
	logLevel   = flag.String("loglevel", "", "Log level: debug, info, warn, error")

	// Help
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the builder. Flags left at
// their zero value keep the environment or default setting.
func applyFlags(b *config.ConfigBuilder) {
	applyEngineFlags(b)
	applyOutputFlags(b)
	applyDuplicateFlags(b)
	if *logLevel != "" {
		b.WithLogLevel(*logLevel)
	}
}

func applyEngineFlags(b *config.ConfigBuilder) {
	if *catalogFile != "" {
		b.WithCatalog(*catalogFile)
	}
	if *workers != 0 {
		b.WithWorkers(*workers)
	}
	b.WithPerftDepth(*perftDepth)
}

func applyOutputFlags(b *config.ConfigBuilder) {
	if *jsonOutput {
		b.WithJSONOutput(true)
	}
	b.WithBoard(*showBoard)
	if *lineLength > 0 {
		b.WithMaxLineLength(uint(*lineLength))
	}
}

func applyDuplicateFlags(b *config.ConfigBuilder) {
	b.WithDuplicateSuppression(*skipDups)
	b.WithMaxPositions(*maxPositions)
}
