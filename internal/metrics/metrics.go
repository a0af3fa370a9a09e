package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Numeric Metrics
var (
	ValuesFormatted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameValuesFormatted,
			Help: HelpTextValuesFormatted,
		},
		[]string{LabelRegime},
	)

	InvalidValues = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInvalidValues,
			Help: HelpTextInvalidValues,
		},
		[]string{LabelSource},
	)

	PurchasesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesResolved,
			Help: HelpTextPurchasesResolved,
		},
		[]string{LabelTier, LabelOutcome},
	)

	OverflowsTempered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOverflowsTempered,
			Help: HelpTextOverflowsTempered,
		},
	)

	TierTableTiers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameTierTableTiersLoad,
			Help: HelpTextTierTableTiersLoad,
		},
	)
)

// RecordFormat counts one value rendered through regime.
func RecordFormat(regime string) {
	ValuesFormatted.WithLabelValues(regime).Inc()
}

// RecordInvalidValue counts a NaN that reached a display boundary.
func RecordInvalidValue(source string) {
	InvalidValues.WithLabelValues(source).Inc()
}

// RecordPurchase counts a buy-max resolution for tier.
func RecordPurchase(tier int, purchased bool) {
	outcome := OutcomeNone
	if purchased {
		outcome = OutcomePurchased
	}
	PurchasesResolved.WithLabelValues(strconv.Itoa(tier), outcome).Inc()
}
