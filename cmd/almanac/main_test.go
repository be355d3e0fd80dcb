package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/platform/testkit"
)

const sampleFile = "../../internal/core/almanac/testdata/sample.txt"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveSampleFile(t *testing.T) {
	out, err := run(t, "", "solve", sampleFile)
	require.NoError(t, err)
	assert.Equal(t, "46\n", out)

	out, err = run(t, "", "solve", "--mode", "seeds", "--workers", "2", sampleFile)
	require.NoError(t, err)
	assert.Equal(t, "35\n", out)
}

func TestSolveStdinWithTrace(t *testing.T) {
	b, err := os.ReadFile(sampleFile)
	require.NoError(t, err)

	out, err := run(t, string(b), "solve", "--trace", "-")
	require.NoError(t, err)
	testkit.MustContain(t, out, "seed-to-soil", "humidity-to-location", "len=27")
	assert.True(t, strings.HasSuffix(out, "\n46\n"), out)
}

func TestSolveErrors(t *testing.T) {
	_, err := run(t, "", "solve", "--mode", "pairs", sampleFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode")

	_, err = run(t, "seeds: 1 2 3\n", "solve")
	require.Error(t, err)

	_, err = run(t, "", "solve", "does/not/exist.txt")
	require.Error(t, err)
}

func TestLookupPrintsHops(t *testing.T) {
	out, err := run(t, "", "lookup", "--value", "79", sampleFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	testkit.MustContain(t, lines[0], "seed-to-soil", "79 -> 81")
	assert.Equal(t, "82", lines[7])

	_, err = run(t, "", "lookup", sampleFile)
	require.Error(t, err, "--value is required")
}

func TestConvertRoundTripsThroughYAML(t *testing.T) {
	yml, err := run(t, "", "convert", sampleFile)
	require.NoError(t, err)
	testkit.MustContain(t, yml, "seeds:", "seed-to-soil")

	out, err := run(t, yml, "solve", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "46\n", out)
}

func TestHumanNumbers(t *testing.T) {
	p := newPrinter(true)
	assert.Equal(t, "1,234,567", p.num(uint64(1234567)))
	assert.Equal(t, "1234567", newPrinter(false).num(1234567))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "almanac "), out)
}
