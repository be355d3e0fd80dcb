// Package service records and reads run history
package service

import (
	"context"
	"math/big"
	"time"

	"almanac/internal/modkit/repokit"
	perr "almanac/internal/platform/errors"
	"almanac/internal/platform/logger"
	"almanac/internal/services/runs/domain"
	"almanac/internal/services/runs/repo"

	"github.com/google/uuid"
)

// Service defines the runs service contract
type Service interface {
	domain.ServicePort
}

// Config tunes the service
type Config struct {
	DefaultLimit     int
	StatementTimeout time.Duration
}

// Svc implements Service on top of the hybrid repo
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cfg    Config
	log    logger.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// New constructs the runs service; db must be non nil
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config, log logger.Logger) *Svc {
	if db == nil {
		panic("runs.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("runs.Service requires a non nil Repo binder")
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 20
	}
	if cfg.StatementTimeout > 0 {
		db = repokit.WithBeginHooks(db, repokit.StatementTimeout(cfg.StatementTimeout))
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		cfg:    cfg,
		log:    log.With().Str("component", "runs").Logger(),
		now:    time.Now,
		newID:  uuid.New,
	}
}

// Record stores the summary in a transaction, then the stage traces
// a trace failure is logged and does not fail the run
func (s *Svc) Record(ctx context.Context, in domain.NewRun) (string, error) {
	id := s.newID()
	at := s.now().UTC()

	row := repo.RunRow{
		ID:          id,
		Kind:        in.Kind,
		Mode:        in.Mode,
		Answer:      in.Answer,
		Inputs:      in.Inputs,
		Stages:      len(in.Reports),
		FinalRanges: in.FinalRanges,
		InputDigest: in.InputDigest,
		ElapsedUS:   in.Elapsed.Microseconds(),
		CreatedAt:   at,
	}
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return repokit.MustBind(s.binder, q).InsertRun(ctx, row)
	})
	if err != nil {
		return "", err
	}

	traces := make([]repo.TraceRow, 0, len(in.Reports))
	for _, r := range in.Reports {
		traces = append(traces, repo.TraceRow{
			Index:      r.Index,
			Name:       r.Name,
			Rules:      r.Rules,
			In:         r.In,
			Out:        r.Out,
			Translated: r.Translated,
			InLen:      orZero(r.InLen),
			OutLen:     orZero(r.OutLen),
		})
	}
	if err := s.Repo.InsertTraces(ctx, id, at, traces); err != nil && !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		s.log.Warn().Err(err).Str("run_id", id.String()).Msg("stage traces not stored")
	}
	return id.String(), nil
}

// Get returns one run by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Run, error) {
	uid, err := parseID(id)
	if err != nil {
		return domain.Run{}, err
	}
	return s.Repo.GetRun(ctx, uid)
}

// Recent lists the newest runs first; a zero limit uses the configured default
func (s *Svc) Recent(ctx context.Context, in domain.RecentInput) ([]domain.Run, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	runs, err := s.Repo.RecentRuns(ctx, limit)
	if err != nil {
		return nil, err
	}
	if runs == nil {
		runs = []domain.Run{}
	}
	return runs, nil
}

// Stages returns the stored stage traces of a run in stage order
func (s *Svc) Stages(ctx context.Context, id string) ([]domain.StageTrace, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	traces, err := s.Repo.Traces(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(traces) == 0 {
		return nil, perr.NotFoundf("no stage traces for run %s", id)
	}
	return traces, nil
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, perr.WithField(perr.InvalidArgf("run id must be a uuid"), "id")
	}
	return uid, nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// Disabled answers every call with Unavailable; used when postgres is not configured
type Disabled struct{}

var errDisabled = perr.Unavailablef("run history is disabled")

// Record implements domain.RecorderPort
func (Disabled) Record(context.Context, domain.NewRun) (string, error) { return "", errDisabled }

// Get implements domain.QueryPort
func (Disabled) Get(context.Context, string) (domain.Run, error) { return domain.Run{}, errDisabled }

// Recent implements domain.QueryPort
func (Disabled) Recent(context.Context, domain.RecentInput) ([]domain.Run, error) {
	return nil, errDisabled
}

// Stages implements domain.QueryPort
func (Disabled) Stages(context.Context, string) ([]domain.StageTrace, error) {
	return nil, errDisabled
}
