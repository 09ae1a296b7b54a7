package http

import (
	"reviewtrust/internal/core/account"
	"reviewtrust/internal/core/signal"
)

// TextRequest scores one review text
type TextRequest struct {
	Text string `json:"text" validate:"required,nonblank,max=20000" example:"Absolutely amazing product! Highly recommend to everyone!"`
}

// ProfileRequest scores one reviewer profile
type ProfileRequest struct {
	Profile *account.Profile `json:"profile" validate:"required"`
}

// ItemRequest is one review of a batch
type ItemRequest struct {
	ID      string           `json:"id" validate:"max=128"`
	Text    string           `json:"text" validate:"max=20000"`
	Profile *account.Profile `json:"profile,omitempty"`
	Extra   signal.Bundle    `json:"extra,omitempty"`
}

// BatchRequest is every review scraped from one page
type BatchRequest struct {
	ID              string        `json:"id" validate:"omitempty,max=128"`
	Items           []ItemRequest `json:"items" validate:"required,min=1,dive"`
	RatingHistogram map[int]int   `json:"ratingHistogram,omitempty" validate:"omitempty,dive,keys,min=1,max=5,endkeys,min=0"`
}

// ScoreRequest aggregates signals computed by the caller
type ScoreRequest struct {
	Signals signal.Bundle `json:"signals" validate:"required"`
}
