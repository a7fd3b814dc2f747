package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chessplus-go/internal/analysis"
	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/config"
	"github.com/lgbarn/chessplus-go/internal/engine"
	"github.com/lgbarn/chessplus-go/internal/output"
	"github.com/lgbarn/chessplus-go/internal/position"
	"github.com/lgbarn/chessplus-go/internal/session"
)

// parsePosition parses s, defaulting to the initial position.
func parsePosition(s string) (*chess.Board, chess.Side, error) {
	if s == "" {
		s = position.InitialPosition
	}
	return position.Parse(s)
}

func wantJSON(cfg *config.Config) bool {
	return cfg.Output.Format == config.JSON
}

func maybeDiagram(cfg *config.Config, board *chess.Board) {
	if cfg.Output.ShowBoard && !wantJSON(cfg) {
		output.WriteDiagram(cfg.OutputFile, board)
		fmt.Fprintln(cfg.OutputFile)
	}
}

// runAnalyze prints the full report for one position.
func runAnalyze(cfg *config.Config, eng *engine.Engine, board *chess.Board, side chess.Side) error {
	report := analysis.New(eng).Analyze(position.Format(board, side))
	maybeDiagram(cfg, board)

	var w output.ReportWriter = output.NewTextWriter(cfg)
	if wantJSON(cfg) {
		w = output.NewJSONWriterSingle(cfg)
	}
	if err := w.WriteReport(report); err != nil {
		return err
	}
	return w.Close()
}

// runSquare prints the legal destinations of the piece on name.
func runSquare(cfg *config.Config, eng *engine.Engine, board *chess.Board, side chess.Side, name string) error {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		return err
	}
	dests, err := eng.GetLegalMoves(board, sq, side)
	if err != nil {
		return err
	}

	names := output.SquaresToStrings(dests)
	if wantJSON(cfg) {
		return output.WriteJSON(cfg.OutputFile, &output.JSONMoves{
			Position: position.Format(board, side),
			From:     sq.String(),
			Piece:    string(board.Get(sq).Kind),
			Moves:    names,
		})
	}
	maybeDiagram(cfg, board)
	output.WriteDestinations(cfg.OutputFile, sq.String(), names, int(cfg.Output.MaxLineLength))
	return nil
}

// runMove applies a legal move and prints the resulting position.
func runMove(cfg *config.Config, eng *engine.Engine, board *chess.Board, side chess.Side, text string) error {
	m, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	if _, err := eng.GetLegalMoves(board, m.From, side); err != nil {
		return err
	}

	promoted := eng.IsPromotion(board, m.From, m.To)
	next, err := eng.ApplyLegalMove(board, m.From, m.To)
	if err != nil {
		return err
	}
	result := position.Format(next, side.Opposite())
	log.WithFields(log.Fields{"move": m.String(), "promoted": promoted}).Debug("move applied")

	if wantJSON(cfg) {
		return output.WriteJSON(cfg.OutputFile, struct {
			Move     string `json:"move"`
			Promoted bool   `json:"promoted"`
			Position string `json:"position"`
		}{m.String(), promoted, result})
	}
	maybeDiagram(cfg, next)
	fmt.Fprintln(cfg.OutputFile, result)
	return nil
}

// runCheck reports whether the side to move has its leader attacked.
func runCheck(cfg *config.Config, eng *engine.Engine, board *chess.Board, side chess.Side) error {
	check := &output.JSONCheck{
		Position: position.Format(board, side),
		Side:     side.String(),
		Attacked: eng.IsLeaderAttacked(board, side),
	}
	if leader, ok := eng.Leader(board, side); ok && check.Attacked {
		check.Attackers = output.SquaresToStrings(eng.Attackers(board, leader, side.Opposite()))
	}

	if wantJSON(cfg) {
		return output.WriteJSON(cfg.OutputFile, check)
	}
	maybeDiagram(cfg, board)
	if !check.Attacked {
		fmt.Fprintf(cfg.OutputFile, "%s leader not attacked\n", check.Side)
		return nil
	}
	fmt.Fprintf(cfg.OutputFile, "%s leader attacked by %s\n", check.Side, strings.Join(check.Attackers, " "))
	return nil
}

// runPerft prints the perft count, or the divide when requested.
func runPerft(cfg *config.Config, eng *engine.Engine, board *chess.Board, side chess.Side, depth int, byMove bool) error {
	pos := position.Format(board, side)
	log.WithFields(log.Fields{"depth": depth, "divide": byMove}).Debug("perft")

	if byMove {
		d := eng.PerftDivide(board, side, depth)
		if wantJSON(cfg) {
			return output.WriteJSON(cfg.OutputFile, output.DivideToJSON(pos, depth, d))
		}
		output.WriteDivide(cfg.OutputFile, d)
		return nil
	}

	nodes := eng.Perft(board, side, depth)
	if wantJSON(cfg) {
		return output.WriteJSON(cfg.OutputFile, &output.JSONPerft{Position: pos, Depth: depth, Nodes: nodes})
	}
	fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", depth, nodes)
	return nil
}

// runBatch analyzes every position in path ("-" reads stdin).
func runBatch(ctx context.Context, cfg *config.Config, eng *engine.Engine, path string, stdin io.Reader) error {
	in := stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	positions, err := analysis.ReadPositions(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	opts := []analysis.Option{analysis.WithWorkers(cfg.Engine.Workers)}
	if cfg.Duplicate.Suppress {
		opts = append(opts, analysis.WithSkipDuplicates(cfg.Duplicate.MaxPositions))
	}
	a := analysis.New(eng, opts...)

	reports, batchErr := a.AnalyzeAll(ctx, positions)
	w := output.NewReportWriter(cfg)
	for _, r := range reports {
		if err := w.WriteReport(r); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	if batchErr != nil {
		return batchErr
	}

	log.WithFields(log.Fields{
		"positions":  len(positions),
		"duplicates": a.DuplicateCount(),
	}).Info("batch complete")
	return nil
}

// runPlay drives a session from lines of input. Each line is a square to
// press, or one of "board", "reset" and "quit".
func runPlay(cfg *config.Config, eng *engine.Engine, in io.Reader) error {
	opts := []session.Option{}
	if *positionFlag != "" {
		board, side, err := position.Parse(*positionFlag)
		if err != nil {
			return err
		}
		opts = append(opts, session.WithPosition(board, side))
	}
	return playSession(cfg.OutputFile, session.New(eng, opts...), in, int(cfg.Output.MaxLineLength))
}

func playSession(out io.Writer, s *session.Session, in io.Reader, maxLineLength int) error {
	fmt.Fprintf(out, "%s to move\n", s.Turn())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		switch cmd {
		case "":
			continue
		case "quit":
			return nil
		case "reset":
			s.Reset()
			fmt.Fprintf(out, "%s to move\n", s.Turn())
			continue
		case "board":
			output.WriteDiagram(out, s.Board())
			continue
		}

		sq, err := chess.ParseSquare(cmd)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		r, err := s.Press(sq)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		writePress(out, s, r, maxLineLength)
	}
	return scanner.Err()
}

func writePress(out io.Writer, s *session.Session, r session.Result, maxLineLength int) {
	switch r.Action {
	case session.Selected:
		sel, _ := s.Selection()
		output.WriteDestinations(out, sel.String(), output.SquaresToStrings(s.Highlights()), maxLineLength)
	case session.Moved:
		line := r.Move.String()
		if r.Promoted {
			line += " promoted"
		}
		fmt.Fprintln(out, line)
		if s.InCheck() {
			fmt.Fprintf(out, "%s to move, leader attacked\n", s.Turn())
		} else {
			fmt.Fprintf(out, "%s to move\n", s.Turn())
		}
	default:
		fmt.Fprintln(out, "cleared")
	}
}
