package account

import (
	"fmt"
	"math"
	"strings"
	"time"

	"reviewtrust/internal/core/signal"
)

const day = 24 * time.Hour

// Analyze returns the per-profile account signals measured at now
func Analyze(p *Profile, now time.Time) signal.Set {
	if p == nil {
		p = &Profile{}
	}
	return signal.Set{
		signal.AccountAge:          Age(p, now),
		signal.PostingFrequency:    PostingFrequency(p),
		signal.ReviewDiversity:     ReviewDiversity(p),
		signal.ProfileCompleteness: Completeness(p),
		signal.NetworkSignals:      Network(p),
		signal.VerifiedPurchase:    Verified(p),
	}
}

// Age scores how long the account has existed, falling back to the first review date
func Age(p *Profile, now time.Time) *signal.Output {
	ref := p.AccountCreated
	if ref == nil {
		ref = p.FirstReviewDate
	}
	if ref == nil {
		return signal.Unknown()
	}
	days := now.Sub(*ref).Hours() / 24
	switch {
	case days < 7:
		return signal.Flagged(0.1, fmt.Sprintf("account is %d day(s) old", int(math.Max(0, days))))
	case days < 30:
		return signal.Flagged(0.3, fmt.Sprintf("account is %d days old", int(days)))
	case days < 90:
		return signal.Of(0.6)
	default:
		return signal.Of(0.9)
	}
}

// PostingFrequency flags bursts of reviews on the same UTC calendar day
func PostingFrequency(p *Profile) *signal.Output {
	if len(p.ReviewDates) < 2 {
		return signal.Unknown()
	}
	perDay := map[string]int{}
	busiest := 0
	for _, d := range p.ReviewDates {
		k := d.UTC().Format(time.DateOnly)
		perDay[k]++
		busiest = max(busiest, perDay[k])
	}
	avg := float64(len(p.ReviewDates)) / float64(len(perDay))
	switch {
	case busiest > 5:
		return signal.Flagged(0.15, fmt.Sprintf("%d reviews posted in one day", busiest))
	case avg > 3:
		return signal.Flagged(0.3, fmt.Sprintf("%.1f reviews per active day", avg))
	default:
		return signal.Of(0.8)
	}
}

// ReviewDiversity looks at how varied the author's ratings and categories are
func ReviewDiversity(p *Profile) *signal.Output {
	if len(p.Ratings) < 3 {
		return signal.Unknown()
	}
	counts := map[int]int{}
	top := 0
	for _, r := range p.Ratings {
		counts[r]++
		top = max(top, counts[r])
	}
	dominant := float64(top) / float64(len(p.Ratings))
	if dominant >= 0.9 {
		return signal.Flagged(0.2, fmt.Sprintf("%.0f%% of ratings are identical", dominant*100))
	}
	if len(p.Categories) > 10 {
		distinct := map[string]struct{}{}
		for _, c := range p.Categories {
			distinct[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
		}
		if float64(len(distinct))/float64(len(p.Categories)) < 0.1 {
			return signal.Flagged(0.35, fmt.Sprintf("%d reviews across %d categories", len(p.Categories), len(distinct)))
		}
	}
	score := float64(len(counts))/5*0.5 + (1-dominant)*0.5
	return signal.Of(math.Max(0.4, math.Min(1, score)))
}

// Completeness is the share of optional profile fields the author filled in
func Completeness(p *Profile) *signal.Output {
	present := 0
	for _, ok := range []bool{
		nonBlank(p.DisplayName), nonBlank(p.AvatarURL), nonBlank(p.Bio), nonBlank(p.Location),
		p.HelpfulVotes != nil, p.TotalReviews != nil,
	} {
		if ok {
			present++
		}
	}
	frac := float64(present) / 6
	if frac < 0.3 {
		return signal.Flagged(0.3, fmt.Sprintf("profile is mostly empty (%d of 6 fields)", present))
	}
	return signal.Of(math.Max(0.5, frac))
}

// Network compares helpful votes received to reviews written
func Network(p *Profile) *signal.Output {
	if p.HelpfulVotes == nil || p.TotalReviews == nil || *p.TotalReviews <= 0 {
		return signal.Unknown()
	}
	ratio := float64(*p.HelpfulVotes) / float64(*p.TotalReviews)
	switch {
	case ratio < 0.1 && *p.TotalReviews > 20:
		return signal.Flagged(0.4, fmt.Sprintf("%d helpful votes over %d reviews", *p.HelpfulVotes, *p.TotalReviews))
	case ratio > 1:
		return signal.Of(0.9)
	default:
		return signal.Unknown()
	}
}

// Verified reflects the page's verified purchase badge
func Verified(p *Profile) *signal.Output {
	if p.VerifiedPurchase == nil {
		return signal.Unknown()
	}
	if *p.VerifiedPurchase {
		return signal.Of(0.85)
	}
	return signal.Of(0.45)
}

func nonBlank(s *string) bool { return s != nil && strings.TrimSpace(*s) != "" }
