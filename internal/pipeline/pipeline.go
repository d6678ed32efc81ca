// Package pipeline applies a per-record transform to a delimited stream
// using a bounded number of goroutines while keeping output in input order.
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/josephcopenhaver/go-exp-bytestr/internal/scratch"
	"github.com/josephcopenhaver/go-exp-bytestr/xbytes"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	maxRecordSize = 16 * 1024 * 1024
)

var (
	ErrRecordTooLong = errors.New("record exceeds maximum size")
)

// Scratch carries a reusable parts buffer into a Transform. A Transform
// may grow Parts; the grown buffer is what gets recycled.
type Scratch struct {
	Parts [][]byte
}

// Transform turns one record into the bytes written for it. The record is
// owned by the call, so the result may be a view into it.
type Transform func(s *Scratch, record []byte) ([]byte, error)

type RecordError struct {
	Index int
	err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Index, e.err.Error())
}

func (e *RecordError) Unwrap() error {
	return e.err
}

type Runner struct {
	pool      *scratch.Pool
	workers   int
	batchSize int
	recDelim  byte
	outDelim  []byte
}

type runnerConfig struct {
	pool      *scratch.Pool
	workers   int
	batchSize int
	recDelim  byte
	outDelim  []byte
}

func (cfg *runnerConfig) validate() error {
	if cfg.workers <= 0 {
		return errors.New("workers must be greater than 0")
	}

	if cfg.batchSize <= 0 {
		return errors.New("batchSize must be greater than 0")
	}

	if cfg.pool == nil {
		return errors.New("pool must not be nil")
	}

	return nil
}

type RunnerOption func(*runnerConfig)

type runnerOptions struct{}

func RunnerOpts() runnerOptions {
	return runnerOptions{}
}

func (runnerOptions) Workers(n int) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.workers = n
	}
}

// BatchSize is how many records are read ahead and processed together.
func (runnerOptions) BatchSize(n int) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.batchSize = n
	}
}

// RecordDelimiter separates input records. The same byte terminates every
// output record unless OutputDelimiter says otherwise.
func (runnerOptions) RecordDelimiter(b byte) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.recDelim = b
	}
}

func (runnerOptions) OutputDelimiter(p []byte) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.outDelim = p
	}
}

func (runnerOptions) Pool(p *scratch.Pool) RunnerOption {
	return func(cfg *runnerConfig) {
		cfg.pool = p
	}
}

func NewRunner(options ...RunnerOption) (*Runner, error) {
	cfg := runnerConfig{
		workers:   1,
		batchSize: 256,
		recDelim:  '\n',
	}

	for _, op := range options {
		op(&cfg)
	}

	if cfg.pool == nil {
		p, err := scratch.NewPool()
		if err != nil {
			return nil, err
		}
		cfg.pool = p
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}

	outDelim := cfg.outDelim
	if outDelim == nil {
		outDelim = []byte{cfg.recDelim}
	}

	return &Runner{
		pool:      cfg.pool,
		workers:   cfg.workers,
		batchSize: cfg.batchSize,
		recDelim:  cfg.recDelim,
		outDelim:  outDelim,
	}, nil
}

// ScanRecords is a bufio.SplitFunc that yields delim-terminated records
// without their terminator. A final unterminated record is still yielded.
func ScanRecords(delim byte) bufio.SplitFunc {
	sep := xbytes.Byte(delim)

	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}

		if p := xbytes.Partition(data, sep); p.Found() {
			return len(p.Head()) + len(p.Sep()), p.Head(), nil
		}

		if atEOF {
			return len(data), data, nil
		}

		return 0, nil, nil
	}
}

// Run reads records from r, applies fn to each and writes the results to w
// in input order, each followed by the output delimiter.
//
// The first Transform error stops processing; records already written stay
// written.
func (rn *Runner) Run(ctx context.Context, r io.Reader, w io.Writer, fn Transform) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	sc.Split(ScanRecords(rn.recDelim))

	bw := bufio.NewWriter(w)
	sem := semaphore.NewWeighted(int64(rn.workers))

	batch := make([][]byte, 0, rn.batchSize)
	results := make([][]byte, rn.batchSize)
	var offset int

	for {
		batch = batch[:0]
		for len(batch) < rn.batchSize && sc.Scan() {
			batch = append(batch, xbytes.Clone(sc.Bytes()))
		}

		if len(batch) == 0 {
			break
		}

		if err := rn.runBatch(ctx, sem, batch, results, offset, fn); err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return errors.Join(err, ferr)
			}
			return err
		}

		for i := range batch {
			if _, err := bw.Write(results[i]); err != nil {
				return err
			}
			if _, err := bw.Write(rn.outDelim); err != nil {
				return err
			}
			results[i] = nil
		}

		slog.LogAttrs(ctx, slog.LevelDebug,
			"batch processed",
			slog.Int("first_record", offset),
			slog.Int("num_records", len(batch)),
			slog.Int("idle_buffers", rn.pool.Idle()),
		)

		offset += len(batch)
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("%w: limit is %d bytes", ErrRecordTooLong, maxRecordSize)
		}
		return err
	}

	return bw.Flush()
}

func (rn *Runner) runBatch(ctx context.Context, sem *semaphore.Weighted, batch, results [][]byte, offset int, fn Transform) error {
	g, gctx := errgroup.WithContext(ctx)

	for i, rec := range batch {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}

		g.Go(func() error {
			defer sem.Release(1)

			s := Scratch{Parts: rn.pool.Get()}
			out, err := fn(&s, rec)
			rn.pool.Put(s.Parts)
			if err != nil {
				return &RecordError{Index: offset + i, err: err}
			}

			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
