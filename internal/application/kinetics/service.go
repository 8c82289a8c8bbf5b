// Package kinetics exposes the mechanism parsing use cases behind a service
// interface. It composes the reaction and mechanism parsers, fans entry
// parsing out over a bounded worker pool, and reports structured logs and
// metrics for each block.
package kinetics

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/turtacn/MechParse/internal/infrastructure/monitoring/logging"
	monprom "github.com/turtacn/MechParse/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MechParse/internal/parser/mechanism"
	"github.com/turtacn/MechParse/internal/parser/reaction"
	apperrors "github.com/turtacn/MechParse/pkg/errors"
	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

// EntryFailure describes one reaction entry that could not be parsed.
type EntryFailure struct {
	// Index is the zero-based position of the entry within its block.
	Index int `json:"index"`
	// Code is the error code of the failure.
	Code apperrors.ErrorCode `json:"code"`
	// Message is the human-readable failure description.
	Message string `json:"message"`
	// Entry is the first line of the offending entry.
	Entry string `json:"entry"`
}

// ParseResult is the outcome of parsing one reaction block.
type ParseResult struct {
	// Records holds the parsed reactions in source order. Failed entries
	// leave no record; Failures identifies them by index.
	Records []*kinetics.ReactionRecord `json:"records"`
	// EntryCount is the number of entries the block segmented into.
	EntryCount int `json:"entry_count"`
	// Failures lists entries that failed, in index order. Empty on full
	// success.
	Failures []EntryFailure `json:"failures,omitempty"`
}

// MechanismResult extends ParseResult with mechanism-level information.
type MechanismResult struct {
	ParseResult
	// Units are the rate coefficient units declared on the REACTIONS line,
	// with CHEMKIN defaults for unspecified dimensions.
	Units kinetics.ReactionUnits `json:"units"`
}

// Service is the mechanism parsing contract used by the CLI and HTTP
// interfaces.
type Service interface {
	// ParseMechanism isolates the REACTIONS block of a full mechanism file,
	// resolves its units and parses every entry.
	ParseMechanism(ctx context.Context, text string) (*MechanismResult, error)

	// ParseBlock parses a bare reaction block (no REACTIONS/END wrapper).
	ParseBlock(ctx context.Context, block string) (*ParseResult, error)

	// KeyedEntries maps each entry of a bare reaction block to its reagent
	// key without fully parsing rate data.
	KeyedEntries(ctx context.Context, block string) (map[kinetics.ReagentKey]string, error)
}

// Options tune a Service.
type Options struct {
	// Workers bounds concurrent entry parsing. Zero or negative means 4.
	Workers int
	// FailFast aborts a block at the first failed entry and returns its
	// error instead of collecting failures.
	FailFast bool
}

type service struct {
	opts    Options
	logger  logging.Logger
	metrics monprom.ParserMetrics
}

// NewService constructs a Service. A nil logger or metrics falls back to the
// no-op implementation.
func NewService(opts Options, logger logging.Logger, metrics monprom.ParserMetrics) Service {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if metrics == nil {
		metrics = monprom.NewNoopMetrics()
	}
	return &service{opts: opts, logger: logger.Named("kinetics"), metrics: metrics}
}

func (s *service) ParseMechanism(ctx context.Context, text string) (*MechanismResult, error) {
	block, err := mechanism.ReactionBlock(text)
	if err != nil {
		return nil, err
	}
	units, err := mechanism.ReactionUnits(text)
	if err != nil {
		return nil, err
	}

	res, err := s.ParseBlock(ctx, block)
	if err != nil {
		return nil, err
	}
	return &MechanismResult{ParseResult: *res, Units: units}, nil
}

func (s *service) ParseBlock(ctx context.Context, block string) (*ParseResult, error) {
	start := time.Now()
	entries := reaction.Entries(block)
	if len(entries) == 0 {
		s.metrics.RecordBlockParse(0, time.Since(start), false)
		return nil, apperrors.New(apperrors.ErrCodeEmptyEntry, "no reaction entries found in block")
	}

	records := make([]*kinetics.ReactionRecord, len(entries))
	failures := make([]*EntryFailure, len(entries))

	sem := make(chan struct{}, s.opts.Workers)
	var wg sync.WaitGroup

	// tripped records that cancellation came from a failed entry under
	// FailFast, as opposed to the caller's context. Only the latter means
	// entries silently went unprocessed.
	var tripped atomic.Bool

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

loop:
	for i, entry := range entries {
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, entry string) {
			defer wg.Done()
			defer func() { <-sem }()

			rec, err := reaction.ParseEntry(entry)
			if err != nil {
				failures[i] = &EntryFailure{
					Index:   i,
					Code:    apperrors.GetCode(err),
					Message: err.Error(),
					Entry:   firstLine(entry),
				}
				if s.opts.FailFast {
					tripped.Store(true)
					cancel()
				}
				return
			}
			records[i] = rec
		}(i, entry)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil && !tripped.Load() {
		s.metrics.RecordBlockParse(len(entries), time.Since(start), false)
		return nil, apperrors.Wrap(err, apperrors.ErrCodeTimeout, "block parse canceled")
	}

	res := &ParseResult{EntryCount: len(entries)}
	for i := range entries {
		if f := failures[i]; f != nil {
			s.metrics.RecordEntryFailure(string(f.Code))
			if s.opts.FailFast {
				s.metrics.RecordBlockParse(len(entries), time.Since(start), false)
				s.logger.Warn("block parse failed",
					logging.Int("entry_index", f.Index),
					logging.String("code", string(f.Code)),
					logging.String("entry", f.Entry))
				return nil, apperrors.New(f.Code, f.Message)
			}
			res.Failures = append(res.Failures, *f)
			continue
		}
		if rec := records[i]; rec != nil {
			res.Records = append(res.Records, rec)
		}
	}

	elapsed := time.Since(start)
	s.metrics.RecordBlockParse(len(entries), elapsed, len(res.Failures) == 0)
	s.logger.Info("block parsed",
		logging.Int("entries", res.EntryCount),
		logging.Int("records", len(res.Records)),
		logging.Int("failures", len(res.Failures)),
		logging.Duration("elapsed", elapsed))
	return res, nil
}

func (s *service) KeyedEntries(ctx context.Context, block string) (map[kinetics.ReagentKey]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeTimeout, "keyed parse canceled")
	}
	return reaction.ParseBlockKeyed(block)
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
