package pg

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"almanac/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func TestPoolConfig(t *testing.T) {
	pc, err := PoolConfig(Config{URL: "postgres://u:p@localhost:5432/almanac", AppName: "almanac-test", MaxConns: 3})
	if err != nil {
		t.Fatalf("pool config: %v", err)
	}
	if pc.MaxConns != 3 {
		t.Fatalf("MaxConns = %d", pc.MaxConns)
	}
	if got := pc.ConnConfig.RuntimeParams["application_name"]; got != "almanac-test" {
		t.Fatalf("application_name = %q", got)
	}
	if _, err := PoolConfig(Config{URL: "postgres://u:p@localhost:notaport/db"}); err == nil {
		t.Fatalf("bad url should fail")
	}
}

func TestOpenUsesPoolSeam(t *testing.T) {
	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = c
		return nil, errors.New("no server")
	})

	_, err := Open(context.Background(), Config{URL: "postgres://localhost/almanac"}, nil, func(c *pgxpool.Config) {
		c.MinConns = 1
	})
	if err == nil {
		t.Fatalf("pool error should surface")
	}
	if seen == nil || seen.MinConns != 1 {
		t.Fatalf("mutator not applied before dialing")
	}

	var nilPG *PG
	nilPG.Close()
}

func TestCompact(t *testing.T) {
	in := "SELECT id,\n\t  answer\r\nFROM   almanac_runs  "
	if got := compact(in); got != "SELECT id, answer FROM almanac_runs" {
		t.Fatalf("compact = %q", got)
	}
}

func TestTracerLevels(t *testing.T) {
	var buf bytes.Buffer
	root := zerolog.New(&buf).Level(zerolog.ErrorLevel)
	tr := Tracer(root)

	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 1", ElapsedUS: 1500})
	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 2", Slow: true})
	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 3", Err: errors.New("boom")})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("tracer should ignore the root level, got %d lines", len(lines))
	}
	testkit.MustContain(t, lines[0], `"level":"info"`, `"elapsed_ms":1.5`, `"component":"pg"`)
	testkit.MustContain(t, lines[1], `"level":"warn"`, `"slow":true`)
	testkit.MustContain(t, lines[2], `"level":"error"`, `"error":"boom"`)
}
