package repo

import (
	"context"
	"errors"
	"math/big"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perr "almanac/internal/platform/errors"
	"almanac/internal/platform/store"
)

// fakeRows replays value tuples into Scan destinations by reflection
type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	if len(row) != len(dest) {
		return errors.New("column count mismatch")
	}
	for i, v := range row {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }

type tag int64

func (t tag) String() string      { return "INSERT" }
func (t tag) RowsAffected() int64 { return int64(t) }

type fakePG struct {
	sql  []string
	args [][]any
	rows [][]any
	err  error
}

func (f *fakePG) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return tag(1), f.err
}

func (f *fakePG) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{data: f.rows}, nil
}

func (f *fakePG) QueryRow(context.Context, string, ...any) store.Row { return nil }

type fakeCH struct {
	table string
	rows  [][]any
	query [][]any
	execs []string
	err   error
}

func (c *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	c.execs = append(c.execs, sql)
	return c.err
}

func (c *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	c.table, c.rows = table, rows
	return c.err
}

func (c *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) {
	return &fakeRows{data: c.query}, c.err
}

func (c *fakeCH) Ping(context.Context) error { return nil }
func (c *fakeCH) Close() error               { return nil }

func strp(s string) *string { return &s }

func TestInsertRunWritesAnswerAsText(t *testing.T) {
	t.Parallel()

	pg := &fakePG{}
	r := NewHybrid(nil).Bind(pg)
	answer := uint64(18446744073709551615)
	id := uuid.New()

	require.NoError(t, r.InsertRun(context.Background(), RunRow{ID: id, Kind: "solve", Mode: "ranges", Answer: &answer}))
	require.Len(t, pg.args, 1)
	assert.Equal(t, id.String(), pg.args[0][0])
	assert.Equal(t, "18446744073709551615", *(pg.args[0][3].(*string)))

	require.NoError(t, r.InsertRun(context.Background(), RunRow{ID: id, Kind: "remap"}))
	assert.Nil(t, pg.args[1][3].(*string))
}

func TestGetRunScansAndMapsNotFound(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()
	pg := &fakePG{rows: [][]any{{
		id.String(), "solve", "ranges", strp("46"), 2, 7, 7, "9f86d081884c7d65", int64(412), at,
	}}}
	r := NewHybrid(nil).Bind(pg)

	run, err := r.GetRun(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, run.Answer)
	assert.Equal(t, uint64(46), *run.Answer)
	assert.Equal(t, 7, run.Stages)
	assert.Equal(t, at, run.CreatedAt)

	_, err = NewHybrid(nil).Bind(&fakePG{}).GetRun(context.Background(), id)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound), "got %v", err)

	_, err = NewHybrid(nil).Bind(&fakePG{rows: [][]any{{
		id.String(), "solve", "ranges", strp("nope"), 2, 7, 7, "x", int64(1), at,
	}}}).GetRun(context.Background(), id)
	assert.Error(t, err)
}

func TestRecentRunsPassesLimit(t *testing.T) {
	t.Parallel()

	pg := &fakePG{}
	runs, err := NewHybrid(nil).Bind(pg).RecentRuns(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.Equal(t, []any{5}, pg.args[0])
	assert.Contains(t, pg.sql[0], "order by created_at desc")
}

func TestTracesRequireClickhouse(t *testing.T) {
	t.Parallel()

	r := NewHybrid(nil).Bind(&fakePG{})
	err := r.InsertTraces(context.Background(), uuid.New(), time.Now(), nil)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
	_, err = r.Traces(context.Background(), uuid.New())
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
}

func TestInsertAndReadTraces(t *testing.T) {
	t.Parallel()

	huge, _ := new(big.Int).SetString("36893488147419103230", 10)
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	ch := &fakeCH{}
	r := NewHybrid(ch).Bind(&fakePG{})
	id := uuid.New()

	err := r.InsertTraces(context.Background(), id, at, []TraceRow{
		{Index: 0, Name: "seed-to-soil", Rules: 2, In: 2, Out: 3, Translated: 2, InLen: big.NewInt(27), OutLen: big.NewInt(27)},
		{Index: 1, Name: "soil-to-fertilizer", Rules: 3, In: 3, Out: 4, Translated: 3, InLen: huge, OutLen: huge},
	})
	require.NoError(t, err)
	assert.Equal(t, TracesTable, ch.table)
	require.Len(t, ch.rows, 2)
	assert.Equal(t, []any{id, uint32(1), "soil-to-fertilizer", uint64(3), uint64(3), uint64(4), uint64(3), huge, huge, at}, ch.rows[1])

	ch.query = [][]any{{uint32(1), "soil-to-fertilizer", uint64(3), uint64(3), uint64(4), uint64(3), *huge, *huge, at}}
	traces, err := r.Traces(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, traces, 1)
	assert.Equal(t, "36893488147419103230", traces[0].OutLen)
	assert.Equal(t, 4, traces[0].Out)

	ch.err = errors.New("ch down")
	err = r.InsertTraces(context.Background(), id, at, nil)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDB))
}

func TestTracesKeepLargeCounts(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	ch := &fakeCH{}
	r := NewHybrid(ch).Bind(&fakePG{})
	id := uuid.New()

	err := r.InsertTraces(context.Background(), id, at, []TraceRow{
		{Index: 70000, Name: "deep", Rules: 1, In: 5_000_000_000, Out: 5_000_000_001, Translated: 4_294_967_296, InLen: big.NewInt(1), OutLen: big.NewInt(1)},
	})
	require.NoError(t, err)
	require.Len(t, ch.rows, 1)
	assert.Equal(t, uint32(70000), ch.rows[0][1])
	assert.Equal(t, uint64(5_000_000_000), ch.rows[0][4])
	assert.Equal(t, uint64(4_294_967_296), ch.rows[0][6])

	ch.query = [][]any{{uint32(70000), "deep", uint64(1), uint64(5_000_000_000), uint64(5_000_000_001), uint64(4_294_967_296), *big.NewInt(1), *big.NewInt(1), at}}
	traces, err := r.Traces(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, traces, 1)
	assert.Equal(t, 70000, traces[0].Index)
	assert.Equal(t, 5_000_000_001, traces[0].Out)
}

func TestEnsureSchema(t *testing.T) {
	t.Parallel()

	pg, ch := &fakePG{}, &fakeCH{}
	require.NoError(t, EnsureSchema(context.Background(), pg, ch))
	assert.True(t, strings.Contains(pg.sql[0], RunsTable))
	assert.True(t, strings.Contains(ch.execs[0], TracesTable))

	require.NoError(t, EnsureSchema(context.Background(), nil, nil))

	err := EnsureSchema(context.Background(), &fakePG{err: errors.New("boom")}, nil)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDB))
}
