package handler

import (
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/format"
	"github.com/osse101/hypernum/internal/growth"
	"github.com/osse101/hypernum/internal/logger"
	"github.com/osse101/hypernum/internal/metrics"
)

// TierService is the tier registry the tier endpoints operate on.
// growth.Table implements it.
type TierService interface {
	Summaries() []growth.TierSummary
	Cost(id int, bought bignum.Number) (bignum.Number, error)
	MaxAffordable(id int, balance bignum.Number) (bignum.Number, error)
	BuyMax(id int, balance bignum.Number) (growth.Purchase, error)
	Reset(id int) error
}

// TierResponse describes one tier
type TierResponse struct {
	Tier              int           `json:"tier"`
	Name              string        `json:"name"`
	Bought            bignum.Number `json:"bought"`
	NextCost          bignum.Number `json:"next_cost"`
	NextCostFormatted string        `json:"next_cost_formatted"`
	BaseCost          bignum.Number `json:"base_cost"`
	CostMultiplier    bignum.Number `json:"cost_multiplier"`
	ScalingAmount     bignum.Number `json:"scaling_amount"`
}

// CostRequest asks for the price of the purchase after bought purchases
type CostRequest struct {
	Bought string `json:"bought" validate:"required,number"`
}

// CostResponse carries a purchase price
type CostResponse struct {
	Cost      bignum.Number `json:"cost"`
	Formatted string        `json:"formatted"`
}

// BalanceRequest carries the balance a query spends
type BalanceRequest struct {
	Balance string `json:"balance" validate:"required,number"`
}

// MaxResponse carries the largest affordable purchase index and the number
// of purchases a balance covers from nothing
type MaxResponse struct {
	MaxIndex bignum.Number `json:"max_index"`
	Count    bignum.Number `json:"count"`
}

// PurchaseResponse is the outcome of a buy-max
type PurchaseResponse struct {
	Tier          int           `json:"tier"`
	Bought        bignum.Number `json:"bought"`
	Cost          bignum.Number `json:"cost"`
	CostFormatted string        `json:"cost_formatted"`
	Purchased     bool          `json:"purchased"`
}

// HandleListTiers lists every tier in tier order
func HandleListTiers(svc TierService, f *format.Formatter, defaults format.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// a Caser keeps state between calls, so each request gets its own
		title := cases.Title(language.English)

		summaries := svc.Summaries()
		tiers := make([]TierResponse, 0, len(summaries))
		for _, s := range summaries {
			tiers = append(tiers, TierResponse{
				Tier:              s.Tier,
				Name:              title.String(s.Name),
				Bought:            s.Bought,
				NextCost:          s.NextCost,
				NextCostFormatted: f.Format(s.NextCost, defaults),
				BaseCost:          s.BaseCost,
				CostMultiplier:    s.CostMultiplier,
				ScalingAmount:     s.ScalingAmount,
			})
		}

		logger.FromContext(r.Context()).Debug("Tiers listed", "count", len(tiers))
		respondJSON(w, http.StatusOK, tiers)
	}
}

// HandleTierCost prices a purchase of a tier
func HandleTierCost(svc TierService, f *format.Formatter, defaults format.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := tierParam(r, w)
		if !ok {
			return
		}
		var req CostRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Tier cost"); err != nil {
			return
		}

		cost, err := svc.Cost(id, number(req.Bought))
		if err != nil {
			log.Warn(ErrMsgGetCostFailed, "tier", id, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, CostResponse{
			Cost:      cost,
			Formatted: display(r, f, "tier_cost", cost, defaults),
		})
	}
}

// HandleTierMax answers how many purchases of a tier a balance covers
func HandleTierMax(svc TierService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := tierParam(r, w)
		if !ok {
			return
		}
		var req BalanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Tier max"); err != nil {
			return
		}

		balance := number(req.Balance)
		index, err := svc.MaxAffordable(id, balance)
		if err != nil {
			log.Warn(ErrMsgGetMaxFailed, "tier", id, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}
		first, err := svc.Cost(id, bignum.Zero)
		if err != nil {
			log.Warn(ErrMsgGetMaxFailed, "tier", id, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		count := bignum.Zero
		if balance.Gte(first) {
			count = index.Add(bignum.One)
		}
		respondJSON(w, http.StatusOK, MaxResponse{MaxIndex: index, Count: count})
	}
}

// HandleTierBuyMax spends a balance on as many purchases of a tier as it covers
func HandleTierBuyMax(svc TierService, f *format.Formatter, defaults format.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := tierParam(r, w)
		if !ok {
			return
		}
		var req BalanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Tier buy-max"); err != nil {
			return
		}

		purchase, err := svc.BuyMax(id, number(req.Balance))
		if err != nil {
			log.Warn(ErrMsgBuyMaxFailed, "tier", id, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}
		metrics.RecordPurchase(id, purchase.Purchased)

		log.Info("Tier buy-max resolved", "tier", id, "bought", purchase.Bought, "purchased", purchase.Purchased)
		respondJSON(w, http.StatusOK, PurchaseResponse{
			Tier:          purchase.Tier,
			Bought:        purchase.Bought,
			Cost:          purchase.Cost,
			CostFormatted: f.Format(purchase.Cost, defaults),
			Purchased:     purchase.Purchased,
		})
	}
}

// HandleTierReset clears the purchases of a tier
func HandleTierReset(svc TierService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := tierParam(r, w)
		if !ok {
			return
		}
		if err := svc.Reset(id); err != nil {
			log.Warn(ErrMsgResetTierFailed, "tier", id, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Tier reset", "tier", id)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTierResetSuccess})
	}
}
