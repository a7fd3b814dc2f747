// Package analysis runs the engine over batches of positions.
package analysis

import (
	"bufio"
	"context"
	"io"
	"sort"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chessplus-go/internal/engine"
	"github.com/lgbarn/chessplus-go/internal/hashing"
	"github.com/lgbarn/chessplus-go/internal/position"
	"github.com/lgbarn/chessplus-go/internal/worker"
)

// Report summarizes one position.
type Report struct {
	Index          int                 `json:"index"`
	Position       string              `json:"position"`
	SideToMove     string              `json:"side_to_move,omitempty"`
	InCheck        bool                `json:"in_check"`
	LegalMoveCount int                 `json:"legal_move_count"`
	Moves          map[string][]string `json:"moves,omitempty"`
	Duplicate      bool                `json:"duplicate,omitempty"`
	Error          string              `json:"error,omitempty"`
}

// Analyzer analyzes positions with an engine. It is safe for concurrent use.
type Analyzer struct {
	eng     *engine.Engine
	workers int
	seen    *hashing.ThreadSafeDuplicateDetector
	logger  log.Interface
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers sets the number of worker goroutines used by AnalyzeAll.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n >= 1 {
			a.workers = n
		}
	}
}

// WithSkipDuplicates marks positions already analyzed by this Analyzer as
// duplicates instead of analyzing them again.
func WithSkipDuplicates(maxCapacity int) Option {
	return func(a *Analyzer) {
		a.seen = hashing.NewThreadSafeDuplicateDetector(maxCapacity)
	}
}

// WithLogger sets the logger. Defaults to the apex/log package logger.
func WithLogger(l log.Interface) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// New creates an analyzer.
func New(eng *engine.Engine, opts ...Option) *Analyzer {
	a := &Analyzer{
		eng:     eng,
		workers: 1,
		logger:  log.Log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze reports on a single position.
func (a *Analyzer) Analyze(pos string) Report {
	return a.analyze(0, pos)
}

func (a *Analyzer) analyze(index int, pos string) Report {
	report := Report{Index: index, Position: pos}

	board, side, err := position.Parse(pos)
	if err != nil {
		report.Error = err.Error()
		a.logger.WithFields(log.Fields{"index": index, "position": pos}).WithError(err).Warn("invalid position")
		return report
	}

	report.Position = position.Format(board, side)
	report.SideToMove = side.String()
	report.InCheck = a.eng.IsLeaderAttacked(board, side)
	report.Moves = make(map[string][]string)
	for _, m := range a.eng.AllLegalMoves(board, side) {
		from := m.From.String()
		report.Moves[from] = append(report.Moves[from], m.To.String())
		report.LegalMoveCount++
	}
	for _, dests := range report.Moves {
		sort.Strings(dests)
	}

	a.logger.WithFields(log.Fields{
		"index":    index,
		"moves":    report.LegalMoveCount,
		"in_check": report.InCheck,
	}).Debug("analyzed position")
	return report
}

// AnalyzeAll analyzes positions concurrently and returns the reports in
// input order. If ctx ends first, the positions not yet analyzed carry the
// context error and AnalyzeAll returns it alongside the partial reports.
func (a *Analyzer) AnalyzeAll(ctx context.Context, positions []string) ([]Report, error) {
	pool := worker.NewPool(func(item worker.Item) Report {
		return a.analyze(item.Index, item.Position)
	}, worker.WithWorkers(a.workers), worker.WithBufferSize(2*a.workers))
	pool.Start()
	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	reports := make([]Report, len(positions))
	go func() {
		defer pool.Close()
		for i, pos := range positions {
			if pool.IsStopped() {
				return
			}
			if a.isDuplicate(pos) {
				reports[i] = Report{Index: i, Position: pos, Duplicate: true}
				continue
			}
			if err := pool.Submit(ctx, worker.Item{Index: i, Position: pos}); err != nil {
				return
			}
		}
	}()

	// Ordered returns after Close, so the duplicate entries written above
	// are visible here.
	results := worker.Ordered(pool.Results(), len(positions))
	for i, r := range results {
		if r.Done {
			reports[i] = r.Value
		}
	}

	fields := log.Fields{"positions": len(positions), "workers": pool.NumWorkers()}
	if a.seen != nil {
		fields["unique"] = a.seen.UniqueCount()
		fields["duplicates"] = a.seen.DuplicateCount()
		if a.seen.IsFull() {
			a.logger.WithFields(fields).Warn("duplicate table full")
		}
	}

	if err := ctx.Err(); err != nil {
		for i, r := range results {
			if !r.Done && !reports[i].Duplicate {
				reports[i] = Report{Index: i, Position: positions[i], Error: err.Error()}
			}
		}
		a.logger.WithFields(fields).WithError(err).Warn("batch interrupted")
		return reports, err
	}

	a.logger.WithFields(fields).Info("batch analyzed")
	return reports, nil
}

// isDuplicate checks pos against previously analyzed positions. Invalid
// positions are never duplicates.
func (a *Analyzer) isDuplicate(pos string) bool {
	if a.seen == nil {
		return false
	}
	board, side, err := position.Parse(pos)
	if err != nil {
		return false
	}
	return a.seen.CheckAndAdd(board, side)
}

// DuplicateCount returns the number of positions skipped as duplicates.
func (a *Analyzer) DuplicateCount() int {
	if a.seen == nil {
		return 0
	}
	return a.seen.DuplicateCount()
}

// ReadPositions reads one position per line. Blank lines and lines
// starting with '#' are skipped.
func ReadPositions(r io.Reader) ([]string, error) {
	var positions []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		positions = append(positions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return positions, nil
}
