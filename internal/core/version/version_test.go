package version

import (
	"strings"
	"testing"

	"almanac/internal/platform/testkit"
)

func TestInfo(t *testing.T) {
	bi := Info("almanac")
	if bi.Service != "almanac" || bi.Version != "dev" || bi.Date != "unknown" {
		t.Fatalf("defaults mismatch: %+v", bi)
	}
	if bi.Commit == "" || !strings.HasPrefix(bi.GoVersion, "go") {
		t.Fatalf("derived fields missing: %+v", bi)
	}
}

func TestInfoPrefersStampedCommit(t *testing.T) {
	testkit.Swap(t, &commit, "abc1234")
	testkit.Swap(t, &version, "v1.2.3")
	if bi := Info("x"); bi.Commit != "abc1234" || bi.Version != "v1.2.3" {
		t.Fatalf("stamped values ignored: %+v", bi)
	}
}
