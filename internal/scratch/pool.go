// Package scratch keeps a bounded LIFO stack of reusable [][]byte result
// buffers for the Append* split functions.
package scratch

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrPoolClosed = errors.New("pool is closed")
)

type Pool struct {
	mu          sync.Mutex
	stack       [][][]byte
	maxIdle     int
	bufCapacity int
	closed      bool
}

type poolConfig struct {
	maxIdle        int
	bufCapacity    int
	maxIdleSet     bool
	bufCapacitySet bool
}

func (cfg *poolConfig) validate() error {
	if !cfg.maxIdleSet {
		cfg.maxIdle = 64
	}

	if !cfg.bufCapacitySet {
		cfg.bufCapacity = 16
	}

	if cfg.maxIdle <= 0 {
		return errors.New("maxIdle must be greater than 0")
	}

	if cfg.bufCapacity < 0 {
		return errors.New("bufCapacity must be greater than or equal to 0")
	}

	return nil
}

type PoolOption func(*poolConfig)

type poolOptions struct{}

// MaxIdle caps how many released buffers are retained.
func (poolOptions) MaxIdle(n int) PoolOption {
	return func(cfg *poolConfig) {
		cfg.maxIdle = n
		cfg.maxIdleSet = true
	}
}

// BufCapacity is the capacity of buffers allocated when the stack is empty.
func (poolOptions) BufCapacity(n int) PoolOption {
	return func(cfg *poolConfig) {
		cfg.bufCapacity = n
		cfg.bufCapacitySet = true
	}
}

func PoolOpts() poolOptions {
	return poolOptions{}
}

func NewPool(options ...PoolOption) (*Pool, error) {
	cfg := poolConfig{}

	for _, op := range options {
		op(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid scratch pool config: %w", err)
	}

	return &Pool{
		stack:       make([][][]byte, 0, cfg.maxIdle),
		maxIdle:     cfg.maxIdle,
		bufCapacity: cfg.bufCapacity,
	}, nil
}

// Get returns the most recently released buffer, truncated to length 0,
// or a new one.
func (p *Pool) Get() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := len(p.stack) - 1
	if i == -1 {
		return make([][]byte, 0, p.bufCapacity)
	}

	v := p.stack[i]
	p.stack[i] = nil
	p.stack = p.stack[:i]

	return v[:0]
}

// Put releases buf for reuse. It reports false when the buffer was dropped
// because the pool is full or closed.
//
// The views held by buf are cleared so that released buffers do not keep
// their source data reachable.
func (p *Pool) Put(buf [][]byte) bool {
	clear(buf[:cap(buf)])

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || len(p.stack) == p.maxIdle {
		return false
	}

	p.stack = append(p.stack, buf[:0])
	return true
}

// Idle is the number of buffers currently retained.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.stack)
}

// Close drops all retained buffers; subsequent Puts are discarded.
//
// Subsequent calls to Close will return ErrPoolClosed.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}

	p.closed = true
	clear(p.stack)
	p.stack = nil

	return nil
}
