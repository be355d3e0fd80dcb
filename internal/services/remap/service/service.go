// Package service runs remap and solve requests through the interval engine
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"almanac/internal/core/almanac"
	"almanac/internal/core/interval"
	perr "almanac/internal/platform/errors"
	"almanac/internal/platform/logger"
	"almanac/internal/platform/metrics"
	"almanac/internal/services/remap/domain"
	rundomain "almanac/internal/services/runs/domain"
)

// Service defines the remap service contract
type Service interface {
	domain.ServicePort
}

// Svc implements Service
type Svc struct {
	eng     *interval.Engine
	rec     rundomain.RecorderPort // nil disables recording
	metrics *metrics.Metrics       // nil disables metrics
	log     logger.Logger
	now     func() time.Time
}

// New constructs the service; a nil engine runs sequentially
func New(eng *interval.Engine, rec rundomain.RecorderPort, m *metrics.Metrics, log logger.Logger) *Svc {
	if eng == nil {
		eng = interval.NewEngine()
	}
	return &Svc{
		eng:     eng,
		rec:     rec,
		metrics: m,
		log:     log.With().Str("component", "remap").Logger(),
		now:     time.Now,
	}
}

// Remap builds the ranges and stages from in and folds them through the engine
func (s *Svc) Remap(ctx context.Context, in domain.RemapInput) (domain.RemapOutput, error) {
	start := s.now()

	initial := make(interval.RangeSet, 0, len(in.Ranges))
	for i, r := range in.Ranges {
		iv, err := interval.FromLen(r.Start, r.Len)
		if err != nil {
			return domain.RemapOutput{}, s.fail(rundomain.KindRemap, start, perr.WithField(err, fmt.Sprintf("ranges[%d]", i)))
		}
		initial = append(initial, iv)
	}

	stages := make([]interval.Stage, 0, len(in.Stages))
	for i, st := range in.Stages {
		name := st.Name
		if name == "" {
			name = fmt.Sprintf("stage-%d", i)
		}
		stage, err := interval.BuildStage(name, st.Rules)
		if err != nil {
			return domain.RemapOutput{}, s.fail(rundomain.KindRemap, start, err)
		}
		stages = append(stages, stage)
	}

	if err := ctx.Err(); err != nil {
		return domain.RemapOutput{}, err
	}

	var reports []interval.StageReport
	run := s.engine().With(interval.WithObserver(func(r interval.StageReport) {
		reports = append(reports, r)
	}))
	final := run.Run(initial, interval.NewPipeline(stages...))

	out := domain.RemapOutput{
		Ranges:   nonNil(final),
		TotalLen: final.Measure().String(),
		Stages:   Summaries(reports),
	}
	if m, err := almanac.MinStart(final); err == nil {
		out.Min = &m
	}
	elapsed := s.now().Sub(start)
	s.observeRun(rundomain.KindRemap, string(almanac.ModeRanges), elapsed, nil)

	if in.Record {
		out.RunID = s.record(ctx, rundomain.NewRun{
			Kind:        rundomain.KindRemap,
			Mode:        string(almanac.ModeRanges),
			Answer:      out.Min,
			Inputs:      len(initial),
			FinalRanges: len(final),
			InputDigest: digestRemap(in),
			Elapsed:     elapsed,
			Reports:     reports,
		})
	}
	return out, nil
}

// Solve parses an almanac document and reduces it to the lowest location
func (s *Svc) Solve(ctx context.Context, in domain.SolveInput) (domain.SolveOutput, error) {
	start := s.now()

	mode, err := almanac.ParseMode(in.Mode)
	if err != nil {
		return domain.SolveOutput{}, err
	}
	format := in.Format
	if format == "" {
		format = almanac.TextFormat
	}
	a, err := almanac.Read(strings.NewReader(in.Almanac), format)
	if err != nil {
		return domain.SolveOutput{}, s.fail(rundomain.KindSolve, start, err)
	}
	if err := ctx.Err(); err != nil {
		return domain.SolveOutput{}, err
	}

	res, err := almanac.Solve(a, mode, s.engine())
	elapsed := s.now().Sub(start)
	s.observeRun(rundomain.KindSolve, string(mode), elapsed, err)
	if err != nil {
		return domain.SolveOutput{}, err
	}

	out := domain.SolveOutput{
		Mode:        string(res.Mode),
		Answer:      res.Answer,
		FinalRanges: nonNil(res.Final),
		Stages:      Summaries(res.Reports),
	}
	if in.Record {
		answer := res.Answer
		out.RunID = s.record(ctx, rundomain.NewRun{
			Kind:        rundomain.KindSolve,
			Mode:        string(res.Mode),
			Answer:      &answer,
			Inputs:      len(a.Seeds),
			FinalRanges: len(res.Final),
			InputDigest: digest(format, in.Almanac),
			Elapsed:     elapsed,
			Reports:     res.Reports,
		})
	}
	return out, nil
}

// engine returns s.eng with stage metrics attached when configured
func (s *Svc) engine() *interval.Engine {
	if s.metrics == nil {
		return s.eng
	}
	return s.eng.With(interval.WithObserver(func(r interval.StageReport) {
		s.metrics.ObserveStage(r.Index, r.In, r.Out, r.Translated)
	}))
}

// record persists a run and returns its id; failures are logged, never returned
func (s *Svc) record(ctx context.Context, run rundomain.NewRun) string {
	if s.rec == nil {
		s.log.Warn().Str("kind", run.Kind).Msg("record requested but run history is disabled")
		return ""
	}
	id, err := s.rec.Record(ctx, run)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("kind", run.Kind).Msg("run not recorded")
		return ""
	}
	logger.C(ctx).Debug().Str("run_id", id).Str("kind", run.Kind).Msg("run recorded")
	return id
}

// fail counts a rejected request and hands err back
func (s *Svc) fail(kind string, start time.Time, err error) error {
	s.observeRun(kind, "", s.now().Sub(start), err)
	return err
}

func (s *Svc) observeRun(kind, mode string, elapsed time.Duration, err error) {
	if s.metrics != nil {
		s.metrics.ObserveRun(kind, mode, elapsed, err)
	}
}

// Summaries turns engine reports into wire summaries
func Summaries(reports []interval.StageReport) []domain.StageSummary {
	out := make([]domain.StageSummary, 0, len(reports))
	for _, r := range reports {
		out = append(out, domain.StageSummary{
			Index:      r.Index,
			Name:       r.Name,
			Rules:      r.Rules,
			In:         r.In,
			Out:        r.Out,
			Translated: r.Translated,
			InLen:      r.InLen.String(),
			OutLen:     r.OutLen.String(),
			Conserved:  r.Conserved(),
		})
	}
	return out
}

func nonNil(rs interval.RangeSet) []interval.Interval {
	if rs == nil {
		return []interval.Interval{}
	}
	return rs
}

// digest is a short content hash used to group identical inputs in run history
func digest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func digestRemap(in domain.RemapInput) string {
	var b strings.Builder
	for _, r := range in.Ranges {
		fmt.Fprintf(&b, "%d+%d;", r.Start, r.Len)
	}
	parts := []string{b.String()}
	for _, st := range in.Stages {
		b.Reset()
		b.WriteString(st.Name)
		for _, t := range st.Rules {
			fmt.Fprintf(&b, "|%d %d %d", t.Dest, t.Source, t.Len)
		}
		parts = append(parts, b.String())
	}
	return digest(parts...)
}
