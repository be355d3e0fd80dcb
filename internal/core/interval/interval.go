// Package interval implements half-open u64 intervals and the rule/stage/pipeline
// machinery that remaps sets of them without enumerating their members
package interval

import (
	"fmt"
	"math"

	perr "almanac/internal/platform/errors"
)

// Construction errors. Matched with perr.Is so field-annotated copies still compare equal
var (
	ErrZeroLength     = perr.New(perr.ErrorCodeConfig, "rule length must be positive")
	ErrOverflow       = perr.New(perr.ErrorCodeConfig, "range end overflows uint64")
	ErrLengthMismatch = perr.New(perr.ErrorCodeConfig, "source and destination lengths differ")
)

// Interval is the half-open range [Start, End)
type Interval struct {
	Start uint64 `json:"start" yaml:"start"`
	End   uint64 `json:"end" yaml:"end"`
}

// FromLen builds [start, start+length), rejecting overflow
func FromLen(start, length uint64) (Interval, error) {
	if length > math.MaxUint64-start {
		return Interval{}, perr.WithField(ErrOverflow, fmt.Sprintf("start %d len %d", start, length))
	}
	return Interval{Start: start, End: start + length}, nil
}

// WellFormed reports Start <= End
func (iv Interval) WellFormed() bool { return iv.Start <= iv.End }

// Len is End-Start; zero for empty or malformed intervals
func (iv Interval) Len() uint64 {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Empty reports an interval with no members
func (iv Interval) Empty() bool { return iv.End <= iv.Start }

// Contains reports Start <= v < End
func (iv Interval) Contains(v uint64) bool { return iv.Start <= v && v < iv.End }

// Overlaps reports a non-empty intersection. Empty intervals overlap nothing
func (iv Interval) Overlaps(o Interval) bool {
	if iv.Empty() || o.Empty() {
		return false
	}
	return max(iv.Start, o.Start) < min(iv.End, o.End)
}

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d)", iv.Start, iv.End) }
