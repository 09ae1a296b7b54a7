package account

import (
	"testing"
	"time"
)

func dated(ts ...time.Time) []*Profile {
	out := make([]*Profile, len(ts))
	for i, t := range ts {
		out[i] = &Profile{ReviewDate: ptr(t)}
	}
	return out
}

func TestTimingCluster(t *testing.T) {
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	h := func(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }

	t.Run("too few", func(t *testing.T) {
		if TimingCluster(dated(h(0), h(1), h(2), h(3))).Known() {
			t.Fatalf("four dates should be unknown")
		}
	})
	t.Run("no clusters", func(t *testing.T) {
		ps := dated(h(0), h(48), h(96), h(144), h(192))
		if v := val(t, TimingCluster(ps)); v != 0.8 {
			t.Fatalf("got %v want 0.8", v)
		}
	})
	t.Run("dominant burst", func(t *testing.T) {
		ps := dated(h(0), h(1), h(2), h(3), h(200), h(400))
		if v := val(t, TimingCluster(ps)); v != 0.15 {
			t.Fatalf("got %v want 0.15", v)
		}
	})
	t.Run("partial clustering", func(t *testing.T) {
		// one cluster of 3 among 8 dated reviews: 1 - 3/8
		ps := dated(h(0), h(2), h(4), h(100), h(200), h(300), h(400), h(500))
		if v := val(t, TimingCluster(ps)); v != 0.625 {
			t.Fatalf("got %v want 0.625", v)
		}
	})
	t.Run("cluster anchored on first date", func(t *testing.T) {
		// h(20), h(40) chain but h(40) is more than 24h after h(0)
		ps := dated(h(0), h(20), h(40), h(200), h(400))
		if v := val(t, TimingCluster(ps)); v != 0.8 {
			t.Fatalf("got %v want 0.8", v)
		}
	})
	t.Run("undated profiles ignored", func(t *testing.T) {
		ps := append(dated(h(0), h(48), h(96), h(144)), &Profile{}, nil)
		if TimingCluster(ps).Known() {
			t.Fatalf("only four dated reviews")
		}
	})
}

func TestCreationCluster(t *testing.T) {
	base := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	mk := func(days ...int) []*Profile {
		out := make([]*Profile, len(days))
		for i, d := range days {
			out[i] = &Profile{AccountCreated: ptr(base.AddDate(0, 0, d))}
		}
		return out
	}
	if v := val(t, CreationCluster(mk(0, 1, 2, 3, 6))); v != 0.1 {
		t.Fatalf("same week=%v want 0.1", v)
	}
	if v := val(t, CreationCluster(mk(0, 1, 2))); v != 0.7 {
		t.Fatalf("three accounts=%v want 0.7", v)
	}
	if v := val(t, CreationCluster(mk(0, 1, 2, 3, 30))); v != 0.7 {
		t.Fatalf("spread=%v want 0.7", v)
	}
	if CreationCluster(mk(0, 1)).Known() {
		t.Fatalf("two accounts should be unknown")
	}
}

func TestRatingDistribution(t *testing.T) {
	cases := []struct {
		name string
		h    map[int]int
		want float64
	}{
		{"wall of fives", map[int]int{5: 90, 4: 3, 1: 7}, 0.3},
		{"polarized", map[int]int{5: 60, 1: 30, 3: 10}, 0.4},
		{"organic", map[int]int{5: 40, 4: 30, 3: 15, 2: 8, 1: 7}, 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if v := val(t, RatingDistribution(tc.h)); v != tc.want {
				t.Fatalf("got %v want %v", v, tc.want)
			}
		})
	}
	if RatingDistribution(map[int]int{5: 9}).Known() {
		t.Fatalf("nine ratings should be unknown")
	}
	if RatingDistribution(map[int]int{5: 5, 0: 20, 7: 20}).Known() {
		t.Fatalf("out-of-range stars must not count")
	}
}
