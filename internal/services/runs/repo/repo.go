// Package repo stores run summaries in postgres and stage traces in clickhouse
package repo

import (
	"context"
	"math/big"
	"strconv"
	"time"

	"almanac/internal/modkit/repokit"
	perr "almanac/internal/platform/errors"
	"almanac/internal/platform/store"
	"almanac/internal/services/runs/domain"

	"github.com/google/uuid"
)

// Table names
const (
	RunsTable   = "almanac_runs"
	TracesTable = "almanac_stage_traces"
)

// Repo is the persistence surface for run history
type Repo interface {
	InsertRun(ctx context.Context, r RunRow) error
	GetRun(ctx context.Context, id uuid.UUID) (domain.Run, error)
	RecentRuns(ctx context.Context, limit int) ([]domain.Run, error)

	// trace methods fail with Unavailable when clickhouse is not configured
	InsertTraces(ctx context.Context, runID uuid.UUID, at time.Time, traces []TraceRow) error
	Traces(ctx context.Context, runID uuid.UUID) ([]domain.StageTrace, error)
}

// RunRow is the insert shape for almanac_runs
type RunRow struct {
	ID          uuid.UUID
	Kind        string
	Mode        string
	Answer      *uint64
	Inputs      int
	Stages      int
	FinalRanges int
	InputDigest string
	ElapsedUS   int64
	CreatedAt   time.Time
}

// TraceRow is the insert shape for almanac_stage_traces
type TraceRow struct {
	Index      int
	Name       string
	Rules      int
	In         int
	Out        int
	Translated int
	InLen      *big.Int
	OutLen     *big.Int
}

// NewHybrid returns a binder whose repos write summaries through the bound Queryer
// and traces through ch, which may be nil
func NewHybrid(ch store.Clickhouse) repokit.Binder[Repo] { return hybridBinder{ch: ch} }

type hybridBinder struct{ ch store.Clickhouse }

// Bind wires a Queryer to the repo
func (b hybridBinder) Bind(q repokit.Queryer) Repo { return &hybrid{pg: q, ch: b.ch} }

type hybrid struct {
	pg repokit.Queryer
	ch store.Clickhouse
}

// numeric(20,0) holds every uint64; it travels as text so no driver has to guess
const pgSchema = `
create table if not exists almanac_runs (
	id           uuid primary key,
	kind         text not null,
	mode         text not null,
	answer       numeric(20,0),
	inputs       integer not null,
	stages       integer not null,
	final_ranges integer not null,
	input_digest text not null,
	elapsed_us   bigint not null,
	created_at   timestamptz not null default now()
);
create index if not exists almanac_runs_created_at_idx on almanac_runs (created_at desc)`

const chSchema = `
CREATE TABLE IF NOT EXISTS almanac_stage_traces (
	run_id     UUID,
	idx        UInt32,
	name       String,
	rules      UInt64,
	in_count   UInt64,
	out_count  UInt64,
	translated UInt64,
	in_len     UInt128,
	out_len    UInt128,
	created_at DateTime64(3)
) ENGINE = MergeTree
ORDER BY (run_id, idx)`

// EnsureSchema creates both tables when missing; either seam may be nil
func EnsureSchema(ctx context.Context, q repokit.Queryer, ch store.Clickhouse) error {
	if q != nil {
		if _, err := q.Exec(ctx, pgSchema); err != nil {
			return perr.FromPostgres(err, "create almanac_runs")
		}
	}
	if ch != nil {
		if err := ch.Exec(ctx, chSchema); err != nil {
			return perr.Wrap(err, perr.ErrorCodeDB, "create almanac_stage_traces")
		}
	}
	return nil
}

func (s *hybrid) InsertRun(ctx context.Context, r RunRow) error {
	var answer *string
	if r.Answer != nil {
		a := strconv.FormatUint(*r.Answer, 10)
		answer = &a
	}
	err := store.ExecOne(ctx, s.pg, `
insert into almanac_runs (id, kind, mode, answer, inputs, stages, final_ranges, input_digest, elapsed_us, created_at)
values ($1::uuid, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10)`,
		r.ID.String(), r.Kind, r.Mode, answer, r.Inputs, r.Stages, r.FinalRanges, r.InputDigest, r.ElapsedUS, r.CreatedAt)
	return perr.FromPostgres(err, "insert run")
}

const runColumns = `id::text, kind, mode, answer::text, inputs, stages, final_ranges, input_digest, elapsed_us, created_at`

func scanRun(r store.Row) (domain.Run, error) {
	var (
		out    domain.Run
		answer *string
	)
	if err := r.Scan(&out.ID, &out.Kind, &out.Mode, &answer, &out.Inputs, &out.Stages,
		&out.FinalRanges, &out.InputDigest, &out.ElapsedUS, &out.CreatedAt); err != nil {
		return domain.Run{}, err
	}
	if answer != nil {
		v, err := strconv.ParseUint(*answer, 10, 64)
		if err != nil {
			return domain.Run{}, perr.Wrapf(err, perr.ErrorCodeDB, "run %s: bad answer %q", out.ID, *answer)
		}
		out.Answer = &v
	}
	return out, nil
}

func (s *hybrid) GetRun(ctx context.Context, id uuid.UUID) (domain.Run, error) {
	run, err := store.One(ctx, s.pg, scanRun,
		`select `+runColumns+` from almanac_runs where id = $1::uuid`, id.String())
	if perr.Is(err, perr.ErrNotFound) {
		return domain.Run{}, perr.NotFoundf("run %s not found", id)
	}
	return run, perr.FromPostgres(err, "get run")
}

func (s *hybrid) RecentRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	runs, err := store.Many(ctx, s.pg, scanRun,
		`select `+runColumns+` from almanac_runs order by created_at desc, id limit $1`, limit)
	return runs, perr.FromPostgres(err, "recent runs")
}

func (s *hybrid) InsertTraces(ctx context.Context, runID uuid.UUID, at time.Time, traces []TraceRow) error {
	if s.ch == nil {
		return perr.Unavailablef("stage traces are disabled")
	}
	rows := make([][]any, 0, len(traces))
	for _, t := range traces {
		rows = append(rows, []any{
			runID, uint32(t.Index), t.Name,
			uint64(t.Rules), uint64(t.In), uint64(t.Out), uint64(t.Translated),
			t.InLen, t.OutLen, at,
		})
	}
	if err := s.ch.Insert(ctx, TracesTable, rows); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "insert stage traces")
	}
	return nil
}

func scanTrace(r store.Row) (domain.StageTrace, error) {
	var (
		idx                        uint32
		rules, in, out, translated uint64
		inLen, outLen              big.Int
		t                          domain.StageTrace
	)
	if err := r.Scan(&idx, &t.Name, &rules, &in, &out, &translated, &inLen, &outLen, &t.CreatedAt); err != nil {
		return domain.StageTrace{}, err
	}
	t.Index, t.Rules, t.In, t.Out, t.Translated = int(idx), int(rules), int(in), int(out), int(translated)
	t.InLen, t.OutLen = inLen.String(), outLen.String()
	return t, nil
}

func (s *hybrid) Traces(ctx context.Context, runID uuid.UUID) ([]domain.StageTrace, error) {
	if s.ch == nil {
		return nil, perr.Unavailablef("stage traces are disabled")
	}
	traces, err := store.ManyCH(ctx, s.ch, scanTrace, `
SELECT idx, name, rules, in_count, out_count, translated, in_len, out_len, created_at
FROM almanac_stage_traces
WHERE run_id = ?
ORDER BY idx`, runID)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "stage traces")
	}
	return traces, nil
}
