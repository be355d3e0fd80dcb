package interval

import (
	"fmt"
	"math"

	perr "almanac/internal/platform/errors"
)

// Rule maps source [src, src+n) onto destination [dst, dst+n) by constant offset
type Rule struct {
	src uint64
	dst uint64
	n   uint64
}

// NewRule validates and builds a rule. Zero length and any uint64 overflow are config errors
func NewRule(sourceStart, destStart, length uint64) (Rule, error) {
	if length == 0 {
		return Rule{}, ErrZeroLength
	}
	if length > math.MaxUint64-sourceStart {
		return Rule{}, perr.WithField(ErrOverflow, fmt.Sprintf("source %d len %d", sourceStart, length))
	}
	if length > math.MaxUint64-destStart {
		return Rule{}, perr.WithField(ErrOverflow, fmt.Sprintf("dest %d len %d", destStart, length))
	}
	return Rule{src: sourceStart, dst: destStart, n: length}, nil
}

// RuleFromIntervals builds a rule from explicit source and destination intervals
func RuleFromIntervals(src, dst Interval) (Rule, error) {
	if !src.WellFormed() || !dst.WellFormed() {
		return Rule{}, perr.Newf(perr.ErrorCodeConfig, "malformed interval %s -> %s", src, dst)
	}
	if src.Len() != dst.Len() {
		return Rule{}, perr.WithField(ErrLengthMismatch, fmt.Sprintf("%s -> %s", src, dst))
	}
	return NewRule(src.Start, dst.Start, src.Len())
}

// Source is the rule's source interval
func (r Rule) Source() Interval { return Interval{Start: r.src, End: r.src + r.n} }

// Dest is the rule's destination interval
func (r Rule) Dest() Interval { return Interval{Start: r.dst, End: r.dst + r.n} }

// Len is the shared length of source and destination
func (r Rule) Len() uint64 { return r.n }

func (r Rule) String() string { return fmt.Sprintf("%s->%s", r.Source(), r.Dest()) }

// Split partitions in against the rule's source
//
// unmatched holds at most two pieces (left of the source, right of the source) and translated at
// most one, already shifted into the destination. Inputs that miss the source come back whole
func (r Rule) Split(in Interval) (unmatched, translated []Interval) {
	s := r.Source()
	if !in.Overlaps(s) {
		return []Interval{in}, nil
	}
	if in.Start < s.Start {
		unmatched = append(unmatched, Interval{Start: in.Start, End: s.Start})
	}
	if in.End > s.End {
		unmatched = append(unmatched, Interval{Start: s.End, End: in.End})
	}
	lo, hi := max(in.Start, s.Start), min(in.End, s.End)
	translated = []Interval{{Start: lo - s.Start + r.dst, End: hi - s.Start + r.dst}}
	return unmatched, translated
}

// Translate maps a single point. ok is false when v is outside the source
func (r Rule) Translate(v uint64) (uint64, bool) {
	if v < r.src || v-r.src >= r.n {
		return v, false
	}
	return v - r.src + r.dst, true
}
