package handler

import (
	"net/http"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/format"
	"github.com/osse101/hypernum/internal/logger"
	"github.com/osse101/hypernum/internal/metrics"
	"github.com/osse101/hypernum/internal/overflow"
)

// OverflowRequest asks for a value tempered past a start point
type OverflowRequest struct {
	Value string  `json:"value" validate:"required,number"`
	Start string  `json:"start" validate:"required,number"`
	Power float64 `json:"power" validate:"gt=0"`
	Meta  float64 `json:"meta,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// OverflowResponse carries the tempered value and how strongly it was tempered
type OverflowResponse struct {
	Value       bignum.Number `json:"value"`
	Formatted   string        `json:"formatted"`
	Tempered    bool          `json:"tempered"`
	Ratio       bignum.Number `json:"ratio"`
	Description string        `json:"description,omitempty"`
}

// HandleOverflow applies the overflow transform
func HandleOverflow(f *format.Formatter, defaults format.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req OverflowRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Overflow"); err != nil {
			return
		}

		meta := req.Meta
		if meta == 0 {
			meta = overflow.DefaultMeta
		}

		state, err := overflow.New(number(req.Value), number(req.Start), req.Power, meta)
		if err != nil {
			log.Warn(ErrMsgOverflowFailed, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		resp := OverflowResponse{
			Value:     state.After,
			Formatted: display(r, f, "overflow", state.After, defaults),
			Tempered:  state.Tempered(),
			Ratio:     bignum.One,
		}
		if resp.Tempered {
			metrics.OverflowsTempered.Inc()
			ratio := overflow.Ratio(state.Before, state.After, overflow.EffectiveStart(state.Start, meta), meta)
			resp.Ratio = ratio
			if req.Power > 1 {
				resp.Description = f.FormatOverflow(ratio.Recip(), true)
			} else {
				resp.Description = f.FormatOverflow(ratio, false)
			}
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
