package testkit

import (
	"testing"
	"time"
)

var seamFn = func() string { return "real" }

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}

func TestMustContain(t *testing.T) {
	MustContain(t, "alpha beta gamma", "beta")
}

func TestMustNear(t *testing.T) {
	MustNear(t, 0.1+0.2, 0.3, 1e-9)
}

func TestPtrAndClock(t *testing.T) {
	if *Ptr(3) != 3 {
		t.Fatalf("Ptr")
	}
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !Clock(at)().Equal(at) {
		t.Fatalf("Clock")
	}
}

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &seamFn, func() string { return "fake" })
		if seamFn() != "fake" {
			t.Fatalf("swap not applied")
		}
	})
	if seamFn() != "real" {
		t.Fatalf("swap not restored")
	}
}
