// Package account scores reviewer profiles and the timing of reviews across a batch
package account

import "time"

// Profile is what a page exposes about one reviewer
// Every field is optional; a missing field makes the dependent signal unknown rather than low
type Profile struct {
	DisplayName *string `json:"displayName,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Location    *string `json:"location,omitempty"`

	AccountCreated  *time.Time `json:"accountCreated,omitempty"`
	FirstReviewDate *time.Time `json:"firstReviewDate,omitempty"`
	ReviewDate      *time.Time `json:"reviewDate,omitempty"`

	TotalReviews *int `json:"totalReviews,omitempty"`
	HelpfulVotes *int `json:"helpfulVotes,omitempty"`

	Ratings     []int       `json:"ratings,omitempty"`
	ReviewDates []time.Time `json:"reviewDates,omitempty"`
	Categories  []string    `json:"categories,omitempty"`

	VerifiedPurchase *bool `json:"verifiedPurchase,omitempty"`
}

// Empty reports whether the profile carries nothing a detector could use
func (p *Profile) Empty() bool {
	if p == nil {
		return true
	}
	return p.DisplayName == nil && p.AvatarURL == nil && p.Bio == nil && p.Location == nil &&
		p.AccountCreated == nil && p.FirstReviewDate == nil && p.ReviewDate == nil &&
		p.TotalReviews == nil && p.HelpfulVotes == nil &&
		len(p.Ratings) == 0 && len(p.ReviewDates) == 0 && len(p.Categories) == 0 &&
		p.VerifiedPurchase == nil
}
