package almanac

import (
	"almanac/internal/core/interval"
)

// Result is a solved almanac
type Result struct {
	Mode    Mode
	Answer  uint64
	Final   interval.RangeSet
	Reports []interval.StageReport
}

// MinStart is the smallest start among non-empty members
func MinStart(rs interval.RangeSet) (uint64, error) {
	found := false
	var best uint64
	for _, iv := range rs {
		if iv.Empty() {
			continue
		}
		if !found || iv.Start < best {
			best, found = iv.Start, true
		}
	}
	if !found {
		return 0, ErrEmptyInput
	}
	return best, nil
}

// LowestLocation looks every seed up as a point and keeps the smallest location
func LowestLocation(a *Almanac) (uint64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrEmptyInput
	}
	best := a.Pipeline.Lookup(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		best = min(best, a.Pipeline.Lookup(s))
	}
	return best, nil
}

// Solve runs the seeds through the pipeline and reduces to the lowest location.
// A nil engine runs sequentially
func Solve(a *Almanac, mode Mode, eng *interval.Engine) (Result, error) {
	if eng == nil {
		eng = interval.NewEngine()
	}
	initial, err := a.Initial(mode)
	if err != nil {
		return Result{}, err
	}

	res := Result{Mode: mode}
	run := eng.With(interval.WithObserver(func(r interval.StageReport) {
		res.Reports = append(res.Reports, r)
	}))
	res.Final = run.Run(initial, a.Pipeline)

	res.Answer, err = MinStart(res.Final)
	if err != nil {
		return res, err
	}
	return res, nil
}
