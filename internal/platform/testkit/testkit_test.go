package testkit

import (
	"os"
	"testing"
)

var seam = func() string { return "real" }

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &seam, func() string { return "fake" })
		if seam() != "fake" {
			t.Fatalf("seam not swapped")
		}
	})
	if seam() != "real" {
		t.Fatalf("seam not restored")
	}
}

func TestHelpers(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
	MustContain(t, "seed-to-soil map:", "seed", "soil")

	Env(t, map[string]string{"TESTKIT_A": "1"})
	if os.Getenv("TESTKIT_A") != "1" {
		t.Fatalf("Env did not set")
	}
}
