package handler

import (
	"net/http"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/format"
	"github.com/osse101/hypernum/internal/logger"
	"github.com/osse101/hypernum/internal/metrics"
)

// Format styles
const (
	StylePlain   = "plain"
	StyleTimes   = "x"
	StylePow     = "pow"
	StyleTet     = "tet"
	StylePercent = "percent"
	StyleTime    = "time"
	StyleHMS     = "hms"
	StyleInt     = "int"
	StyleWhole   = "whole"
)

// FormatRequest asks for one value rendered for display
type FormatRequest struct {
	Value           string `json:"value" validate:"required,number"`
	Precision       *int   `json:"precision,omitempty" validate:"omitempty,gte=0,lte=16"`
	PlacesUnder1000 *int   `json:"places_under_1000,omitempty" validate:"omitempty,gte=0,lte=16"`
	Small           bool   `json:"small,omitempty"`
	Style           string `json:"style,omitempty" validate:"omitempty,oneof=plain x pow tet percent time hms int whole"`
	// Noun, when set, also renders the value as a counted noun ("3 apples").
	Noun string `json:"noun,omitempty" validate:"omitempty,max=100"`
}

// FormatResponse carries the rendered value and the regime that rendered it
type FormatResponse struct {
	Value     bignum.Number `json:"value"`
	Formatted string        `json:"formatted"`
	Regime    string        `json:"regime"`
	Quantity  string        `json:"quantity,omitempty"`
}

// SlogRequest asks for a super-logarithm
type SlogRequest struct {
	Value string `json:"value" validate:"required,number"`
	Base  string `json:"base,omitempty" validate:"omitempty,number"`
}

// SlogResponse carries a super-logarithm
type SlogResponse struct {
	Slog      bignum.Number `json:"slog"`
	Formatted string        `json:"formatted"`
}

// options applies request overrides to the server defaults
func (req FormatRequest) options(defaults format.Options) format.Options {
	o := defaults
	if req.Precision != nil {
		o.Precision = *req.Precision
	}
	if req.PlacesUnder1000 != nil {
		o.PlacesUnder1000 = *req.PlacesUnder1000
	}
	o.Small = o.Small || req.Small
	return o
}

func render(f *format.Formatter, style string, x bignum.Number, o format.Options) string {
	switch style {
	case StyleTimes:
		return f.FormatX(x, o)
	case StylePow:
		return f.FormatPow(x, o)
	case StyleTet:
		return f.FormatTet(x, o)
	case StylePercent:
		return f.FormatPercents(x, o.PlacesUnder1000)
	case StyleTime:
		return f.FormatTime(x, false)
	case StyleHMS:
		return f.FormatTime(x, true)
	case StyleInt:
		return f.FormatInt(x)
	case StyleWhole:
		return f.FormatWhole(x)
	}
	return f.Format(x, o)
}

// HandleFormat renders a number through the display regimes
func HandleFormat(f *format.Formatter, defaults format.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req FormatRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Format"); err != nil {
			return
		}

		x := number(req.Value)
		o := req.options(defaults)
		regime := f.Regime(x, o)
		metrics.RecordFormat(regime)

		resp := FormatResponse{
			Value:     x,
			Formatted: render(f, req.Style, x, o),
			Regime:    regime,
		}
		if req.Noun != "" {
			resp.Quantity = f.Quantify(req.Noun, x, o)
		}

		log.Debug("Value formatted", "value", req.Value, "style", req.Style, "regime", regime)
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleSlog computes the super-logarithm of a value, base 10 by default
func HandleSlog(f *format.Formatter, defaults format.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SlogRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Slog"); err != nil {
			return
		}

		base := bignum.Ten
		if req.Base != "" {
			base = number(req.Base)
		}
		height := number(req.Value).Slog(base)

		respondJSON(w, http.StatusOK, SlogResponse{
			Slog:      height,
			Formatted: display(r, f, "slog", height, defaults),
		})
	}
}
