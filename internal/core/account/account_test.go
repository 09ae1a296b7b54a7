package account

import (
	"testing"
	"time"

	"reviewtrust/internal/core/signal"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func val(t *testing.T, o *signal.Output) float64 {
	t.Helper()
	v, ok := o.Value()
	if !ok {
		t.Fatalf("expected known score")
	}
	return v
}

func TestAnalyze_EmptyProfileIsMostlyUnknown(t *testing.T) {
	got := Analyze(nil, now)
	if len(got) != 6 {
		t.Fatalf("want 6 signals, got %d", len(got))
	}
	for name, o := range got {
		if name == signal.ProfileCompleteness {
			if v := val(t, o); v != 0.3 {
				t.Fatalf("completeness on empty profile=%v want 0.3", v)
			}
			continue
		}
		if o.Known() {
			t.Fatalf("%s should be unknown on an empty profile", name)
		}
	}
}

func TestAge(t *testing.T) {
	cases := []struct {
		name string
		p    Profile
		want float64
	}{
		{"three days", Profile{AccountCreated: ptr(now.AddDate(0, 0, -3))}, 0.1},
		{"two weeks", Profile{AccountCreated: ptr(now.AddDate(0, 0, -14))}, 0.3},
		{"two months", Profile{AccountCreated: ptr(now.AddDate(0, 0, -60))}, 0.6},
		{"two hundred days", Profile{AccountCreated: ptr(now.AddDate(0, 0, -200))}, 0.9},
		{"first review fallback", Profile{FirstReviewDate: ptr(now.AddDate(0, 0, -200))}, 0.9},
		{"created wins over first review", Profile{
			AccountCreated:  ptr(now.AddDate(0, 0, -3)),
			FirstReviewDate: ptr(now.AddDate(-2, 0, 0)),
		}, 0.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if v := val(t, Age(&tc.p, now)); v != tc.want {
				t.Fatalf("got %v want %v", v, tc.want)
			}
		})
	}
	if Age(&Profile{}, now).Known() {
		t.Fatalf("no dates should be unknown")
	}
}

func TestPostingFrequency(t *testing.T) {
	base := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	burst := make([]time.Time, 6)
	for i := range burst {
		burst[i] = base.Add(time.Duration(i) * time.Hour)
	}
	if v := val(t, PostingFrequency(&Profile{ReviewDates: burst})); v != 0.15 {
		t.Fatalf("burst=%v want 0.15", v)
	}

	// four per day on two days: busiest 4, mean 4
	var heavy []time.Time
	for d := range 2 {
		for h := range 4 {
			heavy = append(heavy, base.AddDate(0, 0, d).Add(time.Duration(h)*time.Hour))
		}
	}
	if v := val(t, PostingFrequency(&Profile{ReviewDates: heavy})); v != 0.3 {
		t.Fatalf("heavy=%v want 0.3", v)
	}

	spread := []time.Time{base, base.AddDate(0, 0, 5), base.AddDate(0, 1, 0)}
	if v := val(t, PostingFrequency(&Profile{ReviewDates: spread})); v != 0.8 {
		t.Fatalf("spread=%v want 0.8", v)
	}

	if PostingFrequency(&Profile{ReviewDates: []time.Time{base}}).Known() {
		t.Fatalf("one date should be unknown")
	}
}

func TestReviewDiversity(t *testing.T) {
	allFives := Profile{Ratings: []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5}}
	if v := val(t, ReviewDiversity(&allFives)); v != 0.2 {
		t.Fatalf("identical ratings=%v want 0.2", v)
	}

	cats := make([]string, 12)
	for i := range cats {
		cats[i] = "Kitchen"
	}
	narrow := Profile{Ratings: []int{5, 4, 5, 3}, Categories: cats}
	if v := val(t, ReviewDiversity(&narrow)); v != 0.35 {
		t.Fatalf("single category=%v want 0.35", v)
	}

	varied := Profile{Ratings: []int{1, 2, 3, 4, 5}}
	// distinct 5/5*0.5 + (1-0.2)*0.5 = 0.9
	if v := val(t, ReviewDiversity(&varied)); v < 0.899 || v > 0.901 {
		t.Fatalf("varied=%v want 0.9", v)
	}

	if ReviewDiversity(&Profile{Ratings: []int{5, 4}}).Known() {
		t.Fatalf("two ratings should be unknown")
	}
}

func TestCompleteness(t *testing.T) {
	full := Profile{
		DisplayName: ptr("Dana"), AvatarURL: ptr("https://x/a.png"), Bio: ptr("coffee nerd"),
		Location: ptr("Leeds"), HelpfulVotes: ptr(3), TotalReviews: ptr(12),
	}
	if v := val(t, Completeness(&full)); v != 1 {
		t.Fatalf("full=%v want 1", v)
	}
	half := Profile{DisplayName: ptr("Dana"), Bio: ptr("  "), HelpfulVotes: ptr(0), TotalReviews: ptr(1)}
	if v := val(t, Completeness(&half)); v != 0.5 {
		t.Fatalf("half=%v want 0.5", v)
	}
	sparse := Profile{DisplayName: ptr("Dana")}
	o := Completeness(&sparse)
	if v := val(t, o); v != 0.3 || o.Detail == "" {
		t.Fatalf("sparse=%v detail=%q", v, o.Detail)
	}
}

func TestNetwork(t *testing.T) {
	if v := val(t, Network(&Profile{HelpfulVotes: ptr(1), TotalReviews: ptr(40)})); v != 0.4 {
		t.Fatalf("ignored prolific=%v want 0.4", v)
	}
	if v := val(t, Network(&Profile{HelpfulVotes: ptr(30), TotalReviews: ptr(10)})); v != 0.9 {
		t.Fatalf("well received=%v want 0.9", v)
	}
	if Network(&Profile{HelpfulVotes: ptr(5), TotalReviews: ptr(10)}).Known() {
		t.Fatalf("middle ratio should be unknown")
	}
	if Network(&Profile{HelpfulVotes: ptr(5), TotalReviews: ptr(0)}).Known() {
		t.Fatalf("zero reviews should be unknown")
	}
}

func TestVerified(t *testing.T) {
	if v := val(t, Verified(&Profile{VerifiedPurchase: ptr(true)})); v != 0.85 {
		t.Fatalf("verified=%v", v)
	}
	if v := val(t, Verified(&Profile{VerifiedPurchase: ptr(false)})); v != 0.45 {
		t.Fatalf("unverified=%v", v)
	}
	if Verified(&Profile{}).Known() {
		t.Fatalf("missing badge should be unknown")
	}
}
