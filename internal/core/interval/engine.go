package interval

import (
	"math/big"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the smallest pool the engine will fan out over
const DefaultParallelThreshold = 1024

// StageReport describes one stage of a run
type StageReport struct {
	Index      int      `json:"index"`
	Name       string   `json:"name"`
	Rules      int      `json:"rules"`
	In         int      `json:"in"`
	Out        int      `json:"out"`
	Translated int      `json:"translated"`
	InLen      *big.Int `json:"in_len"`
	OutLen     *big.Int `json:"out_len"`
}

// Conserved reports InLen == OutLen
func (r StageReport) Conserved() bool { return r.InLen.Cmp(r.OutLen) == 0 }

// Observer is called synchronously after every stage
type Observer func(StageReport)

// Option configures an Engine
type Option func(*Engine)

// WithWorkers bounds concurrent chunk splitting; values below 2 keep the engine sequential
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// WithParallelThreshold sets the pool size at which a rule is split across workers
func WithParallelThreshold(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.threshold = n
	}
}

// WithObserver installs a per-stage callback. Observers chain in the order installed
func WithObserver(fn Observer) Option {
	return func(e *Engine) {
		if fn == nil {
			return
		}
		prev := e.observe
		if prev == nil {
			e.observe = fn
			return
		}
		e.observe = func(r StageReport) {
			prev(r)
			fn(r)
		}
	}
}

// Engine folds range sets through pipelines. Safe for concurrent use once built
type Engine struct {
	workers   int
	threshold int
	observe   Observer
}

// NewEngine builds a sequential engine unless WithWorkers says otherwise
func NewEngine(opts ...Option) *Engine {
	e := &Engine{workers: 1, threshold: DefaultParallelThreshold}
	for _, o := range opts {
		o(e)
	}
	return e
}

// With returns a copy of e with extra options applied; e is left untouched
func (e *Engine) With(opts ...Option) *Engine {
	c := *e
	for _, o := range opts {
		o(&c)
	}
	return &c
}

// Workers reports the configured concurrency
func (e *Engine) Workers() int { return e.workers }

// Run maps initial through every stage of p. It never fails; empty input gives empty output
func (e *Engine) Run(initial RangeSet, p Pipeline) RangeSet {
	cur := initial.Clone()
	for i, s := range p.stages {
		out, translated := e.apply(s, cur)
		if e.observe != nil {
			e.observe(StageReport{
				Index:      i,
				Name:       s.name,
				Rules:      len(s.rules),
				In:         len(cur),
				Out:        len(out),
				Translated: translated,
				InLen:      cur.Measure(),
				OutLen:     out.Measure(),
			})
		}
		cur = out
	}
	return cur
}

// ApplyStage is Stage.Apply, parallelised per rule when the pool is large enough
func (e *Engine) ApplyStage(s Stage, in RangeSet) RangeSet {
	out, _ := e.apply(s, in)
	return out
}

type chunkResult struct {
	unmatched  RangeSet
	translated RangeSet
}

func (e *Engine) apply(s Stage, in RangeSet) (RangeSet, int) {
	pool := in.Clone()
	var moved RangeSet
	for _, r := range s.rules {
		if len(pool) == 0 {
			break
		}
		var tr RangeSet
		pool, tr = e.splitPool(r, pool)
		moved = append(moved, tr...)
	}
	return append(pool, moved...), len(moved)
}

func (e *Engine) splitPool(r Rule, pool RangeSet) (unmatched, translated RangeSet) {
	if e.workers < 2 || len(pool) < e.threshold {
		return splitChunk(r, pool)
	}

	size := (len(pool) + e.workers - 1) / e.workers
	results := make([]chunkResult, (len(pool)+size-1)/size)

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i := range results {
		lo := i * size
		hi := min(lo+size, len(pool))
		g.Go(func() error {
			un, tr := splitChunk(r, pool[lo:hi])
			results[i] = chunkResult{unmatched: un, translated: tr}
			return nil
		})
	}
	_ = g.Wait() // chunks never fail; Wait is the barrier before the next rule

	unmatched = make(RangeSet, 0, len(pool))
	for _, c := range results {
		unmatched = append(unmatched, c.unmatched...)
		translated = append(translated, c.translated...)
	}
	return unmatched, translated
}

func splitChunk(r Rule, chunk RangeSet) (unmatched, translated RangeSet) {
	unmatched = make(RangeSet, 0, len(chunk))
	for _, iv := range chunk {
		un, tr := r.Split(iv)
		unmatched = append(unmatched, un...)
		translated = append(translated, tr...)
	}
	return unmatched, translated
}
