package interval

// Pipeline is an ordered chain of stages; stage k reads what stage k-1 wrote
type Pipeline struct {
	stages []Stage
}

// Hop is one step of a point trace
type Hop struct {
	Stage string `json:"stage"`
	In    uint64 `json:"in"`
	Out   uint64 `json:"out"`
}

// NewPipeline copies stages into an immutable pipeline
func NewPipeline(stages ...Stage) Pipeline {
	return Pipeline{stages: append([]Stage(nil), stages...)}
}

// Stages returns a copy of the stage list
func (p Pipeline) Stages() []Stage { return append([]Stage(nil), p.stages...) }

// Len is the number of stages
func (p Pipeline) Len() int { return len(p.stages) }

// Lookup folds a single value through every stage
func (p Pipeline) Lookup(v uint64) uint64 {
	for _, s := range p.stages {
		v = s.Lookup(v)
	}
	return v
}

// Trace is Lookup with every hop recorded
func (p Pipeline) Trace(v uint64) []Hop {
	hops := make([]Hop, 0, len(p.stages))
	for _, s := range p.stages {
		out := s.Lookup(v)
		hops = append(hops, Hop{Stage: s.name, In: v, Out: out})
		v = out
	}
	return hops
}
