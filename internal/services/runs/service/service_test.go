package service

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/core/interval"
	"almanac/internal/modkit/repokit"
	perr "almanac/internal/platform/errors"
	"almanac/internal/platform/testkit"
	"almanac/internal/services/runs/domain"
	"almanac/internal/services/runs/repo"
)

type fakeRepo struct {
	run       repo.RunRow
	traces    []repo.TraceRow
	traceErr  error
	insertErr error
	runs      []domain.Run
	stored    []domain.StageTrace
	limit     int
}

func (f *fakeRepo) InsertRun(_ context.Context, r repo.RunRow) error {
	f.run = r
	return f.insertErr
}

func (f *fakeRepo) GetRun(_ context.Context, id uuid.UUID) (domain.Run, error) {
	if f.run.ID != id {
		return domain.Run{}, perr.NotFoundf("run %s not found", id)
	}
	return domain.Run{ID: id.String(), Kind: f.run.Kind}, nil
}

func (f *fakeRepo) RecentRuns(_ context.Context, limit int) ([]domain.Run, error) {
	f.limit = limit
	return f.runs, nil
}

func (f *fakeRepo) InsertTraces(_ context.Context, _ uuid.UUID, _ time.Time, traces []repo.TraceRow) error {
	f.traces = traces
	return f.traceErr
}

func (f *fakeRepo) Traces(context.Context, uuid.UUID) ([]domain.StageTrace, error) {
	return f.stored, nil
}

type tag struct{}

func (tag) String() string      { return "SET" }
func (tag) RowsAffected() int64 { return 0 }

type fakeDB struct {
	execs []string
	txs   int
}

func (d *fakeDB) Exec(_ context.Context, sql string, _ ...any) (repokit.CommandTag, error) {
	d.execs = append(d.execs, sql)
	return tag{}, nil
}
func (d *fakeDB) Query(context.Context, string, ...any) (repokit.Rows, error) { return nil, nil }
func (d *fakeDB) QueryRow(context.Context, string, ...any) repokit.Row        { return nil }
func (d *fakeDB) Tx(_ context.Context, fn func(repokit.Queryer) error) error {
	d.txs++
	return fn(d)
}

func newSvc(t *testing.T, r *fakeRepo, log zerolog.Logger) (*Svc, *fakeDB) {
	t.Helper()
	db := &fakeDB{}
	s := New(db, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return r }),
		Config{StatementTimeout: 2 * time.Second}, log)
	s.now = func() time.Time { return time.Date(2026, 10, 1, 12, 0, 0, 0, time.FixedZone("x", 3600)) }
	s.newID = func() uuid.UUID { return uuid.MustParse("0b6f3c52-4ad4-4d8e-9a62-1b2b8f1c0e11") }
	return s, db
}

func TestNewPanicsOnMissingDeps(t *testing.T) {
	t.Parallel()

	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return &fakeRepo{} })
	testkit.MustPanic(t, func() { New(nil, binder, Config{}, zerolog.Nop()) })
	testkit.MustPanic(t, func() { New(&fakeDB{}, nil, Config{}, zerolog.Nop()) })
}

func TestRecordStoresSummaryThenTraces(t *testing.T) {
	t.Parallel()

	r := &fakeRepo{}
	s, db := newSvc(t, r, zerolog.Nop())
	answer := uint64(46)

	id, err := s.Record(context.Background(), domain.NewRun{
		Kind:        domain.KindSolve,
		Mode:        "ranges",
		Answer:      &answer,
		Inputs:      2,
		FinalRanges: 7,
		InputDigest: "9f86d081884c7d65",
		Elapsed:     1500 * time.Microsecond,
		Reports: []interval.StageReport{
			{Index: 0, Name: "seed-to-soil", Rules: 2, In: 2, Out: 2, Translated: 2, InLen: big.NewInt(27), OutLen: big.NewInt(27)},
			{Index: 1, Name: "soil-to-fertilizer", Rules: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "0b6f3c52-4ad4-4d8e-9a62-1b2b8f1c0e11", id)

	assert.Equal(t, 1, db.txs)
	assert.Equal(t, []string{"SET LOCAL statement_timeout = 2000"}, db.execs)

	assert.Equal(t, 2, r.run.Stages)
	assert.Equal(t, int64(1500), r.run.ElapsedUS)
	assert.Equal(t, time.UTC, r.run.CreatedAt.Location())
	require.Len(t, r.traces, 2)
	assert.Equal(t, "0", r.traces[1].InLen.String(), "missing lengths default to zero")
}

func TestRecordSummaryFailureFails(t *testing.T) {
	t.Parallel()

	s, _ := newSvc(t, &fakeRepo{insertErr: perr.DBf("insert run")}, zerolog.Nop())
	_, err := s.Record(context.Background(), domain.NewRun{Kind: domain.KindRemap})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDB))
}

func TestRecordTraceFailureOnlyWarns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, _ := newSvc(t, &fakeRepo{traceErr: errors.New("ch down")}, zerolog.New(&buf))
	id, err := s.Record(context.Background(), domain.NewRun{Kind: domain.KindRemap})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Contains(t, buf.String(), "stage traces not stored")

	// disabled traces stay quiet
	buf.Reset()
	s, _ = newSvc(t, &fakeRepo{traceErr: perr.Unavailablef("stage traces are disabled")}, zerolog.New(&buf))
	_, err = s.Record(context.Background(), domain.NewRun{Kind: domain.KindRemap})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestGetAndStages(t *testing.T) {
	t.Parallel()

	r := &fakeRepo{}
	s, _ := newSvc(t, r, zerolog.Nop())
	id, err := s.Record(context.Background(), domain.NewRun{Kind: domain.KindSolve})
	require.NoError(t, err)

	run, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.KindSolve, run.Kind)

	_, err = s.Get(context.Background(), "not-a-uuid")
	e, ok := perr.As(err)
	require.True(t, ok)
	assert.Equal(t, perr.ErrorCodeInvalidArgument, e.Code())
	assert.Equal(t, "id", e.Field())

	_, err = s.Stages(context.Background(), id)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound), "no traces is not found")

	r.stored = []domain.StageTrace{{Index: 0, Name: "seed-to-soil"}}
	traces, err := s.Stages(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, traces, 1)
}

func TestRecentDefaultsLimitAndNeverReturnsNil(t *testing.T) {
	t.Parallel()

	r := &fakeRepo{}
	s, _ := newSvc(t, r, zerolog.Nop())

	runs, err := s.Recent(context.Background(), domain.RecentInput{})
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Equal(t, 20, r.limit)

	_, err = s.Recent(context.Background(), domain.RecentInput{Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, r.limit)
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	var d Disabled
	_, err := d.Record(context.Background(), domain.NewRun{})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
	_, err = d.Get(context.Background(), "x")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
	_, err = d.Recent(context.Background(), domain.RecentInput{})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
	_, err = d.Stages(context.Background(), "x")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
}
