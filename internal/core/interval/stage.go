package interval

import (
	"fmt"

	perr "almanac/internal/platform/errors"
)

// Triple is a rule as written in almanac text: destination first, then source, then length
type Triple struct {
	Dest   uint64 `json:"dest" yaml:"dest"`
	Source uint64 `json:"source" yaml:"source"`
	Len    uint64 `json:"len" yaml:"len"`
}

// Stage is an ordered rule list. Values outside every rule pass through unchanged
type Stage struct {
	name  string
	rules []Rule
}

// NewStage copies rules into an immutable stage
func NewStage(name string, rules ...Rule) Stage {
	return Stage{name: name, rules: append([]Rule(nil), rules...)}
}

// BuildStage validates triples in order; the first failure carries its rule index
func BuildStage(name string, triples []Triple) (Stage, error) {
	rules := make([]Rule, 0, len(triples))
	for i, t := range triples {
		r, err := NewRule(t.Source, t.Dest, t.Len)
		if err != nil {
			return Stage{}, perr.WithOp(perr.WithField(err, fmt.Sprintf("%s rule %d", name, i)), "interval.BuildStage")
		}
		rules = append(rules, r)
	}
	return Stage{name: name, rules: rules}, nil
}

// Name labels the stage for logs and reports
func (s Stage) Name() string { return s.name }

// Rules returns a copy of the rule list
func (s Stage) Rules() []Rule { return append([]Rule(nil), s.rules...) }

// Triples renders the rules back into text order
func (s Stage) Triples() []Triple {
	out := make([]Triple, len(s.rules))
	for i, r := range s.rules {
		out[i] = Triple{Dest: r.dst, Source: r.src, Len: r.n}
	}
	return out
}

// Apply maps a range set through the stage
//
// Each rule consumes from a shrinking pool of untranslated pieces. Translated pieces leave the pool
// and are never looked at again in this stage, so when rules overlap the earlier rule wins.
// The result is the leftover pool followed by translated pieces in rule order
func (s Stage) Apply(in RangeSet) RangeSet {
	pool := in.Clone()
	var moved RangeSet
	for _, r := range s.rules {
		if len(pool) == 0 {
			break
		}
		next := make(RangeSet, 0, len(pool))
		for _, iv := range pool {
			un, tr := r.Split(iv)
			next = append(next, un...)
			moved = append(moved, tr...)
		}
		pool = next
	}
	return append(pool, moved...)
}

// Lookup maps one value; the first rule containing it wins
func (s Stage) Lookup(v uint64) uint64 {
	for _, r := range s.rules {
		if out, ok := r.Translate(v); ok {
			return out
		}
	}
	return v
}
