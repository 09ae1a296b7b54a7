// Package http provides http transport for the analyze service
package http

import (
	"fmt"
	"math"
	stdhttp "net/http"

	"reviewtrust/internal/core/signal"
	"reviewtrust/internal/modkit/httpkit"
	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/services/analyze/domain"
)

// Options tunes the transport
type Options struct {
	// MaxBodyBytes caps batch bodies; other routes use the bind default
	MaxBodyBytes int64
}

// Register mounts analyze endpoints on the given router
func Register(r httpkit.Router, s domain.AnalyzerPort, o Options) {
	h := &handlers{svc: s}

	batchOpts := httpkit.DefaultJSONOptions()
	if o.MaxBodyBytes > 0 {
		batchOpts.MaxBytes = o.MaxBodyBytes
	}

	httpkit.PostJSON[TextRequest](r, "/analyze/text", h.text)
	httpkit.PostJSON[ProfileRequest](r, "/analyze/profile", h.profile)
	httpkit.PostJSON[BatchRequest](r, "/analyze/batch", h.batch, batchOpts)
	httpkit.PostJSON[ScoreRequest](r, "/score", h.score)
	httpkit.Get(r, "/results/{id}", h.result)
}

type handlers struct{ svc domain.AnalyzerPort }

// @Summary Score one review text
// @Tags Analyze
// @Accept json
// @Produce json
// @Param payload body TextRequest true "Review text"
// @Success 200 {object} domain.ItemResult "ok"
// @Router /analyze/text [post]
func (h *handlers) text(r *stdhttp.Request, in TextRequest) (any, error) {
	return h.svc.AnalyzeText(r.Context(), in.Text)
}

// @Summary Score one reviewer profile
// @Tags Analyze
// @Accept json
// @Produce json
// @Param payload body ProfileRequest true "Profile"
// @Success 200 {object} domain.ItemResult "ok"
// @Router /analyze/profile [post]
func (h *handlers) profile(r *stdhttp.Request, in ProfileRequest) (any, error) {
	return h.svc.AnalyzeProfile(r.Context(), in.Profile)
}

// @Summary Score every review of a page
// @Tags Analyze
// @Accept json
// @Produce json
// @Param payload body BatchRequest true "Batch"
// @Success 200 {object} domain.BatchResult "ok"
// @Failure 413 {object} errors.Wire "too many items"
// @Router /analyze/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in BatchRequest) (any, error) {
	b := domain.Batch{ID: in.ID, RatingHistogram: in.RatingHistogram, Items: make([]domain.Item, len(in.Items))}
	for i, it := range in.Items {
		if err := checkBundle(fmt.Sprintf("items[%d].extra", i), it.Extra); err != nil {
			return nil, err
		}
		b.Items[i] = domain.Item{ID: it.ID, Text: it.Text, Profile: it.Profile, Extra: it.Extra}
	}
	return h.svc.AnalyzeBatch(r.Context(), b)
}

// @Summary Aggregate caller supplied signals
// @Tags Analyze
// @Accept json
// @Produce json
// @Param payload body ScoreRequest true "Signal bundle"
// @Success 200 {object} domain.ItemResult "ok"
// @Router /score [post]
func (h *handlers) score(r *stdhttp.Request, in ScoreRequest) (any, error) {
	if err := checkBundle("signals", in.Signals); err != nil {
		return nil, err
	}
	return h.svc.Score(r.Context(), in.Signals)
}

// @Summary Fetch an archived result
// @Tags Results
// @Produce json
// @Param id path string true "Result id"
// @Success 200 {object} domain.ArchivedResult "ok"
// @Failure 404 {object} errors.Wire "unknown id"
// @Failure 503 {object} errors.Wire "archive disabled"
// @Router /results/{id} [get]
func (h *handlers) result(r *stdhttp.Request) (any, error) {
	return h.svc.Result(r.Context(), httpkit.URLParam(r, "id"))
}

// checkBundle rejects scores outside [0,1]; null and missing scores are unknown signals
func checkBundle(field string, b signal.Bundle) error {
	for cat, set := range b {
		for name, o := range set {
			// the raw score, since Value hides out-of-range input
			if o == nil || o.Score == nil {
				continue
			}
			v := *o.Score
			if math.IsNaN(v) || v < 0 || v > 1 {
				return perr.WithField(
					perr.InvalidArgf("score %v is outside [0,1]", v),
					fmt.Sprintf("%s.%s.%s", field, cat, name),
				)
			}
		}
	}
	return nil
}
