package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"almanac/internal/core/interval"
	perr "almanac/internal/platform/errors"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = "map:"
)

// maxLine caps a single almanac line; seed lists on one line can be long
const maxLine = 1 << 20

// ParseString is Parse over a string
func ParseString(s string) (*Almanac, error) { return Parse(strings.NewReader(s)) }

// Parse reads the text almanac format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Rule lines are destination, source, length. Blank lines separate blocks
func Parse(r io.Reader) (*Almanac, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		a       = &Almanac{}
		seen    bool
		stages  []interval.Stage
		name    string
		triples []interval.Triple
		inBlock bool
		lineNo  int
	)

	flush := func() error {
		if !inBlock {
			return nil
		}
		s, err := interval.BuildStage(name, triples)
		if err != nil {
			return err
		}
		stages = append(stages, s)
		name, triples, inBlock = "", nil, false
		return nil
	}

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		at := fmt.Sprintf("line %d", lineNo)

		switch {
		case line == "":
			continue

		case !seen:
			if !strings.HasPrefix(line, seedsPrefix) {
				return nil, perr.WithField(perr.InvalidArgf("expected %q header", seedsPrefix), at)
			}
			nums, err := parseNumbers(strings.TrimPrefix(line, seedsPrefix))
			if err != nil {
				return nil, perr.WithField(err, at)
			}
			a.Seeds, seen = nums, true

		case strings.HasSuffix(line, mapSuffix):
			if err := flush(); err != nil {
				return nil, err
			}
			name = strings.TrimSpace(strings.TrimSuffix(line, mapSuffix))
			if name == "" {
				return nil, perr.WithField(perr.InvalidArgf("map header has no name"), at)
			}
			inBlock = true

		case strings.HasPrefix(line, seedsPrefix):
			return nil, perr.WithField(perr.InvalidArgf("duplicate %q line", seedsPrefix), at)

		default:
			if !inBlock {
				return nil, perr.WithField(perr.InvalidArgf("rule line outside a map block"), at)
			}
			nums, err := parseNumbers(line)
			if err != nil {
				return nil, perr.WithField(err, at)
			}
			if len(nums) != 3 {
				return nil, perr.WithField(perr.InvalidArgf("rule needs 3 numbers, got %d", len(nums)), at)
			}
			t := interval.Triple{Dest: nums[0], Source: nums[1], Len: nums[2]}
			if _, err := interval.NewRule(t.Source, t.Dest, t.Len); err != nil {
				return nil, perr.WithField(err, at)
			}
			triples = append(triples, t)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read almanac")
	}
	if !seen {
		return nil, perr.WithField(perr.InvalidArgf("missing %q line", seedsPrefix), "seeds")
	}
	if err := flush(); err != nil {
		return nil, err
	}

	a.Pipeline = interval.NewPipeline(stages...)
	return a, nil
}

func parseNumbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "bad number %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}

// Input formats accepted by Read
const (
	TextFormat = "text"
	YAMLFormat = "yaml"
)

// Read dispatches on format; empty means text
func Read(r io.Reader, format string) (*Almanac, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", TextFormat:
		return Parse(r)
	case YAMLFormat, "yml":
		return ParseYAML(r)
	}
	return nil, perr.WithField(perr.InvalidArgf("unknown format %q (want text or yaml)", format), "format")
}
