// Package almanac reads seed almanacs and reduces them to answers using the interval engine
package almanac

import (
	"fmt"
	"strings"

	"almanac/internal/core/interval"
	perr "almanac/internal/platform/errors"
)

// ErrEmptyInput is returned when a reduction has nothing to reduce
var ErrEmptyInput = perr.New(perr.ErrorCodeEmptyInput, "no intervals to reduce")

// Almanac is a parsed seed list plus its mapping pipeline
type Almanac struct {
	Seeds    []uint64
	Pipeline interval.Pipeline
}

// Mode picks how the seed list is read
type Mode string

const (
	// ModeRanges reads seeds as (start, length) pairs
	ModeRanges Mode = "ranges"
	// ModeSeeds reads every seed as a single value
	ModeSeeds Mode = "seeds"
)

// ParseMode accepts ranges or seeds; empty means ranges
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeRanges:
		return ModeRanges, nil
	case ModeSeeds:
		return ModeSeeds, nil
	}
	return "", perr.WithField(perr.InvalidArgf("unknown mode %q (want ranges or seeds)", s), "mode")
}

// SeedRanges pairs the seed list into (start, length) intervals. Zero-length pairs are dropped
func (a *Almanac) SeedRanges() (interval.RangeSet, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, perr.WithField(perr.InvalidArgf("seed list has %d values, want start/length pairs", len(a.Seeds)), "seeds")
	}
	rs := make(interval.RangeSet, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		iv, err := interval.FromLen(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, perr.WithField(err, fmt.Sprintf("seeds pair %d", i/2))
		}
		if iv.Empty() {
			continue
		}
		rs = append(rs, iv)
	}
	return rs, nil
}

// SeedPoints turns each seed into a unit interval
func (a *Almanac) SeedPoints() (interval.RangeSet, error) {
	rs := make(interval.RangeSet, 0, len(a.Seeds))
	for i, s := range a.Seeds {
		iv, err := interval.FromLen(s, 1)
		if err != nil {
			return nil, perr.WithField(err, fmt.Sprintf("seed %d", i))
		}
		rs = append(rs, iv)
	}
	return rs, nil
}

// Initial builds the engine input for a mode
func (a *Almanac) Initial(mode Mode) (interval.RangeSet, error) {
	if mode == ModeSeeds {
		return a.SeedPoints()
	}
	return a.SeedRanges()
}
