package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgInvalidTierID = "Invalid tier number"

	// Tier operation error messages
	ErrMsgGetCostFailed   = "Failed to price purchase"
	ErrMsgGetMaxFailed    = "Failed to compute affordable purchases"
	ErrMsgBuyMaxFailed    = "Failed to buy tier"
	ErrMsgResetTierFailed = "Failed to reset tier"

	// Overflow error messages
	ErrMsgOverflowFailed = "Failed to apply overflow"
)

// Success messages for API responses
const (
	MsgTierResetSuccess = "Tier reset successfully"
)

// Log messages
const (
	LogMsgInvalidValue = "Computed value is NaN"
)
