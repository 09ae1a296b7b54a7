package account

import (
	"fmt"
	"sort"
	"time"

	"reviewtrust/internal/core/signal"
)

const (
	minTimedReviews  = 5
	minClusterSize   = 3
	minCreationDates = 3
	minRatings       = 10
	creationWindow   = 7 * day
)

// Behavioral returns every batch level signal the profiles and histogram support
func Behavioral(profiles []*Profile, histogram map[int]int) signal.Set {
	return signal.Set{
		signal.TimingCluster:          TimingCluster(profiles),
		signal.AccountCreationCluster: CreationCluster(profiles),
		signal.RatingDistribution:     RatingDistribution(histogram),
	}
}

// TimingCluster flags bursts of reviews posted within a day of each other
// Clusters grow greedily from their first date; only clusters of three or more count
func TimingCluster(profiles []*Profile) *signal.Output {
	var dates []time.Time
	for _, p := range profiles {
		if p != nil && p.ReviewDate != nil {
			dates = append(dates, *p.ReviewDate)
		}
	}
	if len(dates) < minTimedReviews {
		return signal.Unknown()
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	clustered, largest := 0, 0
	for i := 0; i < len(dates); {
		j := i + 1
		for j < len(dates) && dates[j].Sub(dates[i]) <= day {
			j++
		}
		if size := j - i; size >= minClusterSize {
			clustered += size
			largest = max(largest, size)
		}
		i = j
	}
	if clustered == 0 {
		return signal.Of(0.8)
	}
	total := float64(len(dates))
	if float64(largest)/total > 0.5 {
		return signal.Flagged(0.15, fmt.Sprintf("%d of %d reviews posted within 24h", largest, len(dates)))
	}
	frac := float64(clustered) / total
	return signal.Flagged(max(0.3, 1-frac), fmt.Sprintf("%.0f%% of reviews fall in 24h bursts", frac*100))
}

// CreationCluster flags batches whose authors all registered in the same week
func CreationCluster(profiles []*Profile) *signal.Output {
	var created []time.Time
	for _, p := range profiles {
		if p != nil && p.AccountCreated != nil {
			created = append(created, *p.AccountCreated)
		}
	}
	if len(created) < minCreationDates {
		return signal.Unknown()
	}
	lo, hi := created[0], created[0]
	for _, c := range created[1:] {
		if c.Before(lo) {
			lo = c
		}
		if c.After(hi) {
			hi = c
		}
	}
	if len(created) >= 5 && hi.Sub(lo) <= creationWindow {
		return signal.Flagged(0.1, fmt.Sprintf("%d accounts created within 7 days", len(created)))
	}
	return signal.Of(0.7)
}

// RatingDistribution inspects the page's star histogram (keys 1..5)
func RatingDistribution(histogram map[int]int) *signal.Output {
	total := 0
	for star, n := range histogram {
		if star >= 1 && star <= 5 && n > 0 {
			total += n
		}
	}
	if total < minRatings {
		return signal.Unknown()
	}
	share := func(stars ...int) float64 {
		n := 0
		for _, s := range stars {
			n += max(0, histogram[s])
		}
		return float64(n) / float64(total)
	}
	five, mid, one := share(5), share(2, 3, 4), share(1)
	switch {
	case five > 0.8 && mid < 0.1:
		return signal.Flagged(0.3, fmt.Sprintf("%.0f%% five-star with almost no middle ratings", five*100))
	case one+five > 0.85 && one > 0.15:
		return signal.Flagged(0.4, fmt.Sprintf("polarized ratings: %.0f%% one-star, %.0f%% five-star", one*100, five*100))
	default:
		return signal.Of(0.8)
	}
}
