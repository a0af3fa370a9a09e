package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Numeric metric names
const (
	MetricNameValuesFormatted    = "values_formatted_total"
	MetricNameInvalidValues      = "invalid_values_total"
	MetricNamePurchasesResolved  = "purchases_resolved_total"
	MetricNameOverflowsTempered  = "overflows_tempered_total"
	MetricNameTierTableTiersLoad = "tier_table_tiers"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Numeric metric help text
const (
	HelpTextValuesFormatted    = "Total number of values formatted, by display regime"
	HelpTextInvalidValues      = "Total number of NaN values reaching a display boundary"
	HelpTextPurchasesResolved  = "Total number of buy-max resolutions, by tier and outcome"
	HelpTextOverflowsTempered  = "Total number of values tempered by the overflow transform"
	HelpTextTierTableTiersLoad = "Number of tiers in the loaded tier table"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelRegime  = "regime"
	LabelSource  = "source"
	LabelTier    = "tier"
	LabelOutcome = "outcome"
)

// Purchase outcomes
const (
	OutcomePurchased = "purchased"
	OutcomeNone      = "none"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// unmatchedRoute labels requests that no route matched, keeping path cardinality bounded.
const unmatchedRoute = "unmatched"
